package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldStreamID is the standardized structured logging key for one extraction stream.
	FieldStreamID = "stream_id"
	// FieldSource is the standardized structured logging key for the input file path.
	FieldSource = "source"
	// FieldFrameCount is the standardized structured logging key for extracted frame totals.
	FieldFrameCount = "frame_count"
	// FieldMatchCount is the standardized structured logging key for matched pair totals.
	FieldMatchCount = "match_count"
	// FieldSectionCount is the standardized structured logging key for emitted section totals.
	FieldSectionCount = "section_count"
)
