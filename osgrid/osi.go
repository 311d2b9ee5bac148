package osgrid

import "encoding/json"

// OSI is an Irish National Grid reference: a Ref pinned to the Irish
// system, so JSON decoding and call sites need no explicit system
// argument.
//
// Example:
//
//	gridref, _ := osgrid.ParseOSI("O892437")
//	fmt.Println(gridref.SW()) // [389200 243700]
type OSI struct {
	Ref
}

// NewOSI builds an Irish reference from true-origin coordinates in
// metres, truncated to the precision's grid.
//
// Example:
//
//	gridref, _ := osgrid.NewOSI(389_200, 243_700, osgrid.Precision100m)
//	fmt.Println(gridref) // O892437
func NewOSI(eastings, northings int, precision Precision) (OSI, error) {
	r, err := New(Irish, eastings, northings, precision)
	if err != nil {
		return OSI{}, err
	}

	return OSI{r}, nil
}

// ParseOSI parses an Irish grid reference such as "O892437", "T6520"
// or the tetrad "N24R".
func ParseOSI(s string) (OSI, error) {
	r, err := Parse(Irish, s)
	if err != nil {
		return OSI{}, err
	}

	return OSI{r}, nil
}

// UnmarshalJSON decodes a JSON string holding a grid reference in
// canonical notation. The inverse of the MarshalJSON promoted from Ref.
func (o *OSI) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseOSI(s)
	if err != nil {
		return err
	}
	*o = parsed

	return nil
}
