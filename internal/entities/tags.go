package entities

// nolint:gochecknoglobals
var (
	// Interests is the list of interests a profile can select.
	Interests = []string{
		"Music", "Movies", "Sports", "Travel", "Food", "Art",
		"Reading", "Gaming", "Fitness", "Photography", "Dancing",
		"Hiking", "Cooking", "Technology", "Fashion",
	}

	// Languages is the list of languages a profile can select.
	Languages = []string{"English", "Spanish"}
)

// UnknownTags returns values which are not present in known.
func UnknownTags(known []string, values []string) []string {
	m := make(map[string]struct{}, len(known))
	for _, v := range known {
		m[v] = struct{}{}
	}

	var out []string
	for _, v := range values {
		if _, ok := m[v]; !ok {
			out = append(out, v)
		}
	}

	return out
}

// UniqueTags removes duplicates keeping the first occurrence order.
func UniqueTags(s []string) []string {
	m := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))

	for _, v := range s {
		if _, ok := m[v]; !ok {
			m[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}
