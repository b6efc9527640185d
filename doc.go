// Package lpc implements linear predictive coding: an autoregressive model
// of a signal window estimated from its autocorrelation by the
// Levinson-Durbin recursion, and the filters built on that model.
//
//	signal -> Autocorrelation -> LevinsonDurbin -> coef, energy
//	coef   -> Residual | Synthesize | Predict | FreqResponse
//
// Every operation is generic over float32 and float64 samples.
//
// The estimator, the recursion and the filter boundary each come in more than
// one variant and are chosen explicitly:
//
//   - AutocorrelationMode: Finite (zero-padded, biased) or Periodic (wrap-around).
//   - RecursionMode: Unguarded (classical, may diverge on ill-conditioned input)
//     or Guarded (clamps offending reflection coefficients to 0).
//   - Boundary: ZeroHistory, CopySource or Circular. Circular indexing is only
//     meaningful when the window is one period of a repeating waveform.
//
// An Analyzer bundles these choices with reusable buffers:
//
//	a, err := lpc.New[float64](16, lpc.WithRecursion(lpc.Guarded))
//	if err != nil { ... }
//	if err := a.Calc(signal); err != nil { ... }
//	res := make([]float64, len(signal))
//	_ = a.Residual(signal, res)
package lpc
