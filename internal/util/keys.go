package util

// StorageKey returns the namespaced store key for one account.
// The "raw:" prefix isolates parsecache entries from foreign writers sharing
// the same store.
func StorageKey(ns, key string) string {
	return "raw:" + ns + ":" + key
}
