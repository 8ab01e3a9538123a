package entity

// AppSetting is a key/value application setting (clinic display name etc.).
type AppSetting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
