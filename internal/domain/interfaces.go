package domain

// KeyStore persists named cipher keys sealed under a passphrase.
type KeyStore interface {
	SaveKey(rec KeyRecord, key []byte, passphrase string) (KeyRecord, error)
	LoadKey(name, passphrase string) ([]byte, error)
	ListKeys() ([]KeyRecord, error)
	DeleteKey(name string) error
}

// CipherService normalises raw input and runs the cipher over it.
type CipherService interface {
	Encrypt(key string, raw []byte) (string, error)
	Decrypt(key string, raw []byte) (string, error)
}

// KeyService validates keys and manages the key file.
type KeyService interface {
	Add(name, key, passphrase string) (KeyRecord, error)
	Resolve(name, passphrase string) (string, error)
	Get(name string) (KeyRecord, error)
	List() ([]KeyRecord, error)
	Remove(name string) error
}
