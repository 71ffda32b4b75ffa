package census

// Profile describes the header layout of a census export. Each column accepts several spellings
// because files are hand-edited in spreadsheets.
type Profile struct {
	Name           string
	NameCols       []string
	PopulationCols []string
}

// profiles is the ordered list of layouts tried during auto-detection.
var profiles = []Profile{
	{
		Name:           "indec",
		NameCols:       []string{"Localidad", "Nombre de localidad", "Municipio"},
		PopulationCols: []string{"Población", "Poblacion", "Población total", "Habitantes"},
	},
	{
		Name:           "plain",
		NameCols:       []string{"name", "location", "nombre"},
		PopulationCols: []string{"population", "poblacion", "población"},
	},
}

// match returns the column indexes for the profile, or ok=false if a column is missing.
func (p Profile) match(cols colIndex) (nameIdx, popIdx int, ok bool) {
	nameIdx, ok = cols.find(p.NameCols)
	if !ok {
		return 0, 0, false
	}

	popIdx, ok = cols.find(p.PopulationCols)
	if !ok {
		return 0, 0, false
	}

	return nameIdx, popIdx, true
}
