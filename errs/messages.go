package errs

import "sync"

// MessageProvider returns the message format for a key
type MessageProvider interface {
	GetMessage(key string) string
}

var defaultMessages = map[string]string{
	ErrWrongArgNumberKey:     "Wrong number of arguments",
	ErrIllegalArgumentKey:    "Illegal argument `%s`.",
	ErrUnknownShortOptionKey: "Unknown option `-%s`.",
	ErrUnknownLongOptionKey:  "Unknown option `--%s`.",
	ErrOptionArgInMiddleKey:  "Option `-%s` requires arguments, but is in the middle of the options: `%s`.",

	ErrCommandNotFoundKey:   "Command `%s` not found.",
	ErrUnknownCommandKey:    "Unknown command `%s`",
	ErrRoleAlreadyLinkedKey: "Role %s already linked!",
	ErrRoleCycleKey:         "Role %s can't be linked below itself!",
	ErrPermissionDeniedKey:  "You are not allowed to do that!",

	ErrInvalidOptionKey:      "invalid option: short and long can't both be empty",
	ErrInvalidShortOptionKey: "invalid short option %q: expected a single character",
	ErrInvalidLongOptionKey:  "invalid long option %q",
	ErrInvalidArityKey:       "invalid arity %v: expected none, one or many",
	ErrNilActionKey:          "%s must not be nil",
	ErrDuplicateAliasKey:     "alias %q is already registered",
	ErrInvalidConfigKey:      "invalid configuration: %s",
}

// DefaultMessageProvider serves the built-in English messages. Unknown keys are returned as-is.
type DefaultMessageProvider struct{}

// GetMessage returns the built-in message for key
func (DefaultMessageProvider) GetMessage(key string) string {
	if msg, ok := defaultMessages[key]; ok {
		return msg
	}

	return key
}

// MapMessageProvider overrides a subset of messages and falls back to the built-in ones
type MapMessageProvider map[string]string

// GetMessage returns the overridden message for key, or the built-in one
func (m MapMessageProvider) GetMessage(key string) string {
	if msg, ok := m[key]; ok {
		return msg
	}

	return DefaultMessageProvider{}.GetMessage(key)
}

var (
	defaultProvider    MessageProvider = DefaultMessageProvider{}
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider replaces the provider used to render every error. A nil provider
// restores the built-in messages.
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	if p == nil {
		p = DefaultMessageProvider{}
	}
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	defer defaultProviderMux.RUnlock()

	return defaultProvider
}
