package fit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/rankorder/fit"
	"github.com/katalvlaran/rankorder/rank"
	"github.com/katalvlaran/rankorder/transform"
)

// linearModel predicts y = params[0]·x + params[1].
func linearModel(x, params []float64) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = params[0]*v + params[1]
	}

	return y
}

// zeroModel predicts zero everywhere; residuals equal the data.
func zeroModel(x, _ []float64) []float64 {
	return make([]float64, len(x))
}

// noisyLinearData builds x = linspace(0,1,nS) and Y = slope·x + noise.
func noisyLinearData(rng *rand.Rand, nR, nS int, slope, noiseScale float64) (x []float64, y [][]float64) {
	x = make([]float64, nS)
	for k := range x {
		x[k] = float64(k) / float64(nS-1)
	}
	y = make([][]float64, nR)
	for i := range y {
		y[i] = make([]float64, nS)
		for k := range y[i] {
			y[i][k] = slope*x[k] + noiseScale*rng.NormFloat64()
		}
	}

	return x, y
}

//----------------------------------------------------------------------------//
// Residuals Tests
//----------------------------------------------------------------------------//

// TestResiduals_NoWeights verifies the plain broadcast Y − model(x).
func TestResiduals_NoWeights(t *testing.T) {
	x := []float64{0, 1, 2}
	y := [][]float64{
		{1, 3, 5},
		{2, 4, 6},
	}

	res, err := fit.Residuals(linearModel, []float64{2, 1}, x, y, fit.NoWeights())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0, 0, 0},
		{1, 1, 1},
	}, res)
}

// TestResiduals_ColumnWeights verifies per-sample weights multiply every row.
func TestResiduals_ColumnWeights(t *testing.T) {
	x := []float64{0, 1}
	y := [][]float64{
		{2, 2},
		{4, 4},
	}

	res, err := fit.Residuals(zeroModel, nil, x, y, fit.ColumnWeights([]float64{1, 0.5}))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{2, 1},
		{4, 2},
	}, res)
}

// TestResiduals_MatrixWeights verifies element-wise weights.
func TestResiduals_MatrixWeights(t *testing.T) {
	x := []float64{0, 1}
	y := [][]float64{
		{2, 2},
		{4, 4},
	}
	w := fit.MatrixWeights([][]float64{
		{1, 0},
		{0, 1},
	})

	res, err := fit.Residuals(zeroModel, nil, x, y, w)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{2, 0},
		{0, 4},
	}, res)
}

// TestResiduals_ZeroValueWeights verifies the zero Weights value behaves
// like NoWeights.
func TestResiduals_ZeroValueWeights(t *testing.T) {
	x := []float64{0, 1}
	y := [][]float64{{3, 4}}

	var w fit.Weights
	res, err := fit.Residuals(zeroModel, nil, x, y, w)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 4}}, res)
}

// TestResiduals_Errors verifies shape validation of data, model output
// and both weight variants.
func TestResiduals_Errors(t *testing.T) {
	x := []float64{0, 1, 2}
	y := [][]float64{{1, 2, 3}}

	_, err := fit.Residuals(zeroModel, nil, nil, y, fit.NoWeights())
	assert.ErrorIs(t, err, fit.ErrShapeMismatch, "empty x")

	_, err = fit.Residuals(zeroModel, nil, x, nil, fit.NoWeights())
	assert.ErrorIs(t, err, fit.ErrShapeMismatch, "empty Y")

	_, err = fit.Residuals(zeroModel, nil, x, [][]float64{{1, 2}}, fit.NoWeights())
	assert.ErrorIs(t, err, fit.ErrShapeMismatch, "row width must equal len(x)")

	short := func(x, _ []float64) []float64 { return make([]float64, len(x)-1) }
	_, err = fit.Residuals(short, nil, x, y, fit.NoWeights())
	assert.ErrorIs(t, err, fit.ErrModelOutput, "model output too short")

	_, err = fit.Residuals(zeroModel, nil, x, y, fit.ColumnWeights([]float64{1}))
	assert.ErrorIs(t, err, fit.ErrWeightShape, "column weights wrong length")

	_, err = fit.Residuals(zeroModel, nil, x, y, fit.MatrixWeights([][]float64{{1, 1, 1}, {1, 1, 1}}))
	assert.ErrorIs(t, err, fit.ErrWeightShape, "matrix weights wrong row count")

	_, err = fit.Residuals(zeroModel, nil, x, y, fit.MatrixWeights([][]float64{{1, 1}}))
	assert.ErrorIs(t, err, fit.ErrWeightShape, "matrix weights wrong row width")
}

//----------------------------------------------------------------------------//
// QMatrixFit and QRMS Tests
//----------------------------------------------------------------------------//

// TestQMatrixFit_MatchesPipeline verifies QMatrixFit equals running the
// transform pipeline on the residuals directly.
func TestQMatrixFit_MatchesPipeline(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	x, y := noisyLinearData(rng, 8, 12, 2.0, 0.3)
	params := []float64{1.5, 0}

	got, err := fit.QMatrixFit(linearModel, params, x, y, fit.NoWeights(), rank.Ordinal, nil)
	require.NoError(t, err)

	res, err := fit.Residuals(linearModel, params, x, y, fit.NoWeights())
	require.NoError(t, err)
	want, err := transform.DataToQMatrix(res, rank.Ordinal, nil)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

// TestQRMS_MatchesQMatrixFit verifies the scalar reduction sqrt(mean(Q²)).
func TestQRMS_MatchesQMatrixFit(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	x, y := noisyLinearData(rng, 6, 10, -1.0, 0.2)

	q, err := fit.QMatrixFit(linearModel, []float64{-1, 0}, x, y, fit.NoWeights(), rank.Ordinal, nil)
	require.NoError(t, err)
	var sumSq float64
	var cells int
	for _, row := range q {
		for _, v := range row {
			sumSq += v * v
			cells++
		}
	}
	want := math.Sqrt(sumSq / float64(cells))

	got, err := fit.QRMS(linearModel, []float64{-1, 0}, x, y, fit.NoWeights(), rank.Ordinal, nil)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
}

// TestQRMS_TrueParametersScoreBetter verifies that the error at the true
// slope is below the error at a clearly wrong slope.
func TestQRMS_TrueParametersScoreBetter(t *testing.T) {
	rng := rand.New(rand.NewSource(2274362))
	x, y := noisyLinearData(rng, 25, 20, 2.0, 0.1)

	good, err := fit.QRMS(linearModel, []float64{2.0, 0}, x, y, fit.NoWeights(), rank.Ordinal, nil)
	require.NoError(t, err)
	bad, err := fit.QRMS(linearModel, []float64{3.0, 0}, x, y, fit.NoWeights(), rank.Ordinal, nil)
	require.NoError(t, err)

	assert.Less(t, good, bad, "residual trend from a wrong slope must raise the error")
}

// TestQRMS_OffsetInsensitive verifies that a constant additive offset in
// the data leaves the error untouched: only ranks enter the statistic.
func TestQRMS_OffsetInsensitive(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	x, y := noisyLinearData(rng, 10, 14, 1.0, 0.25)

	shifted := make([][]float64, len(y))
	for i, row := range y {
		shifted[i] = make([]float64, len(row))
		for k, v := range row {
			shifted[i][k] = v + 100.0
		}
	}

	base, err := fit.QRMS(linearModel, []float64{1, 0}, x, y, fit.NoWeights(), rank.Ordinal, nil)
	require.NoError(t, err)
	off, err := fit.QRMS(linearModel, []float64{1, 0}, x, shifted, fit.NoWeights(), rank.Ordinal, nil)
	require.NoError(t, err)

	assert.Equal(t, base, off, "adding a constant offset must not change any rank")
}

//----------------------------------------------------------------------------//
// Objective Tests
//----------------------------------------------------------------------------//

// TestObjective_MatchesQRMS verifies the closure evaluates exactly QRMS.
func TestObjective_MatchesQRMS(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	x, y := noisyLinearData(rng, 7, 9, 0.5, 0.2)

	obj, err := fit.Objective(linearModel, x, y, fit.NoWeights(), rank.Ordinal, nil)
	require.NoError(t, err)

	params := []float64{0.4, 0.1}
	want, err := fit.QRMS(linearModel, params, x, y, fit.NoWeights(), rank.Ordinal, nil)
	require.NoError(t, err)
	assert.Equal(t, want, obj(params))
}

// TestObjective_ConstructorValidation verifies shape, method and random
// source checks happen once, at construction.
func TestObjective_ConstructorValidation(t *testing.T) {
	x := []float64{0, 1, 2}
	y := [][]float64{{1, 2, 3}}

	_, err := fit.Objective(linearModel, nil, y, fit.NoWeights(), rank.Ordinal, nil)
	assert.ErrorIs(t, err, fit.ErrShapeMismatch, "empty x")

	_, err = fit.Objective(linearModel, []float64{1}, [][]float64{{1}}, fit.NoWeights(), rank.Ordinal, nil)
	assert.ErrorIs(t, err, transform.ErrTooFewSamples, "single sampling point")

	_, err = fit.Objective(linearModel, x, [][]float64{{1, 2}}, fit.NoWeights(), rank.Ordinal, nil)
	assert.ErrorIs(t, err, fit.ErrShapeMismatch, "ragged Y")

	_, err = fit.Objective(linearModel, x, y, fit.ColumnWeights([]float64{1}), rank.Ordinal, nil)
	assert.ErrorIs(t, err, fit.ErrWeightShape, "bad weights")

	_, err = fit.Objective(linearModel, x, y, fit.NoWeights(), rank.Method("average"), nil)
	assert.ErrorIs(t, err, rank.ErrUnknownMethod, "unknown method")

	_, err = fit.Objective(linearModel, x, y, fit.NoWeights(), rank.Random, nil)
	assert.ErrorIs(t, err, rank.ErrNilRand, "Random without source")
}

// TestObjective_MisbehavingModelIsNaN verifies that a model violating its
// output contract surfaces as NaN rather than a panic inside a minimizer.
func TestObjective_MisbehavingModelIsNaN(t *testing.T) {
	x := []float64{0, 1, 2}
	y := [][]float64{{1, 2, 3}, {3, 2, 1}}

	broken := func(x, _ []float64) []float64 { return make([]float64, len(x)+1) }
	obj, err := fit.Objective(broken, x, y, fit.NoWeights(), rank.Ordinal, nil)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(obj(nil)), "contract violation must evaluate to NaN")
}
