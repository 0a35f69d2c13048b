package common

// Header maps FITS keywords to their decoded values.
type Header map[string]interface{}

// String returns the value of key when it is a string.
func (h Header) String(key string) (string, bool) {
	v, ok := h[key].(string)
	return v, ok
}

// Has reports whether key is present.
func (h Header) Has(key string) bool {
	_, ok := h[key]
	return ok
}
