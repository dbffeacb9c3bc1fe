package gallery

// All contains every scene, grouped by category. The category name is
// used as a prefix in output filenames.
var All = map[string][]Scene{
	"line":  lineScenes,
	"shape": shapeScenes,
	"text":  textScenes,
}
