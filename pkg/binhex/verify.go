package binhex

// Verify checks the header CRC and the CRC of each present fork, in that
// order. The first mismatch is returned as a *CRCError.
func Verify(c *Container) error {
	if err := verifySection(SectionHeader, c.headerBytes(), c.HeaderCRC); err != nil {
		return err
	}
	if c.Data != nil {
		if err := verifySection(SectionData, c.Data.Data, c.Data.CRC); err != nil {
			return err
		}
	}
	if c.Resource != nil {
		if err := verifySection(SectionResource, c.Resource.Data, c.Resource.CRC); err != nil {
			return err
		}
	}
	return nil
}

func verifySection(section Section, data []byte, stored uint16) error {
	computed := Checksum(data)
	if computed != stored {
		return &CRCError{Section: section, Stored: stored, Computed: computed}
	}
	return nil
}
