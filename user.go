package solid

// UserDataHolder holds a single piece of user data. Its only job is storing
// that value; authentication, persistence and formatting belong elsewhere.
//
// The zero value holds the empty string and is ready to use.
type UserDataHolder struct {
	userData string
}

// NewUserDataHolder returns an empty holder.
func NewUserDataHolder() *UserDataHolder {
	return &UserDataHolder{}
}

// UserData returns the stored value, or "" if nothing was set.
func (h *UserDataHolder) UserData() string {
	return h.userData
}

// SetUserData replaces the stored value.
func (h *UserDataHolder) SetUserData(userData string) {
	h.userData = userData
}
