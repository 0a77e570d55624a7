package core

type Technology struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
	Link    string `yaml:"link,omitempty" json:"link,omitempty"`
}

func (t Technology) Label() string {
	if t.Version == "" {
		return t.Name
	}
	return t.Name + " " + t.Version
}

func (t Technology) HasLink() bool {
	return t.Link != ""
}
