package filesystem

const (
	// TemporaryNamePrefix is the file name prefix used for all temporary files
	// created by path2map. It may be suffixed with additional elements if
	// desired.
	TemporaryNamePrefix = ".path2map-temporary-"
)
