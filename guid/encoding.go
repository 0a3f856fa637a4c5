package guid

// MarshalBinary returns the 16 byte EFI_GUID layout.
func (g GUID) MarshalBinary() ([]byte, error) {
	b := g.Bytes()
	return b[:], nil
}

// UnmarshalBinary decodes the EFI_GUID layout. data must be exactly Size bytes.
func (g *GUID) UnmarshalBinary(data []byte) error {
	parsed, err := FromSlice(data)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// MarshalText returns the canonical text form, so GUIDs encode as strings in
// JSON and YAML.
func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText accepts anything Parse does.
func (g *GUID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
