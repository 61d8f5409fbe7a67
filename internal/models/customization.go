package models

// Customization holds the equipped robot cosmetics. It is persisted under its
// own snapshot key, separate from the profile, matching the client's storage
// layout. Item ids are stored in full ("color-gold"), never derived by
// splitting strings.
type Customization struct {
	EquippedColor     string `json:"equippedColor"`
	EquippedAccessory string `json:"equippedAccessory,omitempty"` // empty = none
}

func NewCustomization() *Customization {
	return &Customization{
		EquippedColor:     DefaultColorID,
		EquippedAccessory: "",
	}
}

func (c *Customization) Normalize() {
	if c.EquippedColor == "" {
		c.EquippedColor = DefaultColorID
	}
	if c.EquippedAccessory == DefaultAccessoryID {
		// "none" equipped is represented as empty
		c.EquippedAccessory = ""
	}
}
