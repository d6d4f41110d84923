package content

// Page is the root of the content tree: a title and an ordered list of tabs.
type Page struct {
	Title         string `yaml:"title" json:"title"`
	DocumentTitle string `yaml:"document_title" json:"document_title"`
	Tabs          []Tab  `yaml:"tabs" json:"tabs"`
}

// Tab is a named view switch holding an ordered group of sections.
type Tab struct {
	ID       string    `yaml:"id" json:"id"`
	Label    string    `yaml:"label" json:"label"`
	Heading  string    `yaml:"heading" json:"heading"`
	Sections []Section `yaml:"sections" json:"sections"`
}

// Section is a titled, collapsible block whose body is literal markdown.
type Section struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Body  string `yaml:"body" json:"body"`
}
