package pages

// Notifier receives the transient success/error notifications the
// controllers emit. The render layer shows them as toasts; tests record them.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// KeyStore is the slice of the credential store the controllers need.
type KeyStore interface {
	Get() string
	Set(key string) error
	Clear() error
}
