package types

// Input describes one indexed string.
type Input struct {
	ID     int    `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Length int    `json:"length" yaml:"length"`
}

// Metrics summarizes the shape of a built tree.
type Metrics struct {
	Nodes                int     `json:"nodes"`
	Leaves               int     `json:"leaves"`
	Internal             int     `json:"internal"`
	AverageInternalDepth float64 `json:"average_internal_depth"`
	LongestRepeat        string  `json:"longest_repeat"`
	LongestRepeatLength  int     `json:"longest_repeat_length"`
}

// Fingerprints lists the fingerprints of one input.
type Fingerprints struct {
	Input  Input    `json:"input"`
	Prints []string `json:"fingerprints"`
}

// Occurrence lists the inputs containing a pattern.
type Occurrence struct {
	Pattern string `json:"pattern"`
	Inputs  []int  `json:"inputs"`
}

// Report is the result of analysing one set of inputs.
type Report struct {
	Construction string         `json:"construction"`
	Alphabet     string         `json:"alphabet"`
	Inputs       []Input        `json:"inputs"`
	Metrics      Metrics        `json:"metrics"`
	Fingerprints []Fingerprints `json:"fingerprints,omitempty"`
	Occurrences  []Occurrence   `json:"occurrences,omitempty"`
	BWT          string         `json:"bwt,omitempty"`
}
