package gore

import "errors"

// Errors reported by the generator.
var (
	// ErrInvalidImage is returned when the source raster is missing or too
	// small to produce non-empty tiles.
	ErrInvalidImage = errors.New("gore: invalid image")

	// ErrUnsupportedProjection is returned for an unknown projection id.
	ErrUnsupportedProjection = errors.New("gore: unsupported projection")

	// ErrInvalidCalibration is returned when a calibration table is malformed.
	ErrInvalidCalibration = errors.New("gore: invalid calibration")
)
