package home

// Counts summarises the catalogue for the index page.
type Counts struct {
	Books              int `json:"num_books"`
	Instances          int `json:"num_instances"`
	InstancesAvailable int `json:"num_instances_available"`
	Authors            int `json:"num_authors"`
	Genres             int `json:"num_genre"`
}

type Index struct {
	Counts
	Visits int64 `json:"num_visits"`
}
