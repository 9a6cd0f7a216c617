package cache

// KeyPrefix namespaces the different key families.
type KeyPrefix string

const (
	PrefixLink KeyPrefix = "link" // link:id
)

// KeyBuilder builds cache keys, optionally under a namespace so several
// deployments can share one Redis.
type KeyBuilder struct {
	namespace string
}

func NewKeyBuilder(namespace string) *KeyBuilder {
	return &KeyBuilder{namespace: namespace}
}

func (k *KeyBuilder) Build(prefix KeyPrefix, parts ...string) string {
	key := string(prefix)

	if k.namespace != "" {
		key = k.namespace + ":" + key
	}

	for _, part := range parts {
		key += ":" + part
	}

	return key
}

// Link builds the key a link record is cached under.
func (k *KeyBuilder) Link(id string) string {
	return k.Build(PrefixLink, id)
}
