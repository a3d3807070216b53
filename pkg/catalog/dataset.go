package catalog

// Metadata is the attribution block at the top of the final document.
type Metadata struct {
	Source          string `json:"source"`
	SourceURL       string `json:"sourceUrl"`
	DataTable       string `json:"dataTable"`
	DownloadDate    string `json:"downloadDate"`
	ProcessedDate   string `json:"processedDate"`
	PipelineVersion string `json:"pipelineVersion"`
	PlanetCount     int    `json:"planetCount"`
	Citation        string `json:"citation"`
}

// Dataset is the final visualization-ready document: metadata plus the
// validated, ordered planet list. The finalizer constructs it once; it is
// never mutated afterwards.
type Dataset struct {
	Metadata Metadata `json:"metadata"`
	Planets  []Planet `json:"planets"`
}

// Fixed source attribution for the NASA Exoplanet Archive.
const (
	SourceName      = "NASA Exoplanet Archive"
	SourceURL       = "https://exoplanetarchive.ipac.caltech.edu/"
	SourceDataTable = "Planetary Systems (PS)"
	SourceCitation  = "NASA Exoplanet Archive, operated by Caltech under contract with NASA"
)
