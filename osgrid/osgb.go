package osgrid

import "encoding/json"

// OSGB is a British National Grid reference: a Ref pinned to the
// British system, so JSON decoding and call sites need no explicit
// system argument.
//
// Example:
//
//	gridref, _ := osgrid.ParseOSGB("SO892437")
//	fmt.Println(gridref.SW()) // [389200 243700]
type OSGB struct {
	Ref
}

// NewOSGB builds a British reference from true-origin coordinates in
// metres, truncated to the precision's grid.
//
// Example:
//
//	gridref, _ := osgrid.NewOSGB(389_200, 243_700, osgrid.Precision100m)
//	fmt.Println(gridref) // SO892437
func NewOSGB(eastings, northings int, precision Precision) (OSGB, error) {
	r, err := New(British, eastings, northings, precision)
	if err != nil {
		return OSGB{}, err
	}

	return OSGB{r}, nil
}

// ParseOSGB parses a British grid reference such as "SO892437", "NT65"
// or the tetrad "SN24R".
func ParseOSGB(s string) (OSGB, error) {
	r, err := Parse(British, s)
	if err != nil {
		return OSGB{}, err
	}

	return OSGB{r}, nil
}

// UnmarshalJSON decodes a JSON string holding a grid reference in
// canonical notation. The inverse of the MarshalJSON promoted from Ref.
func (g *OSGB) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseOSGB(s)
	if err != nil {
		return err
	}
	*g = parsed

	return nil
}
