// SPDX-License-Identifier: MIT

package moving

// MeanStd returns the trailing moving mean and population standard deviation
// of x over windows of w samples. Both outputs have len(x) entries; the first
// w-1 are NaN.
//
// Errors: ErrBadWindow.
// Complexity: O(len(x)).
func MeanStd(x []float64, w int) (mean, std []float64, err error) {
	if w <= 0 {
		return nil, nil, ErrBadWindow
	}
	mean = make([]float64, len(x))
	std = make([]float64, len(x))
	roll(x, 1, w, mean, std)

	return mean, std, nil
}

// Mean returns the trailing moving mean of x.
// Errors: ErrBadWindow.
func Mean(x []float64, w int) ([]float64, error) {
	return MeanLanes(x, 1, w)
}

// Std returns the trailing population moving standard deviation of x.
// Errors: ErrBadWindow.
func Std(x []float64, w int) ([]float64, error) {
	_, std, err := MeanStd(x, w)

	return std, err
}
