// Package fincore implements the financial analytics core: a
// time-value-of-money calculation engine and a currency risk analysis
// engine.
//
// The core functionalities include:
//   - Time Value of Money: present value, future value, net present value,
//     annuities, perpetuities, and compound interest across discrete and
//     continuous compounding frequencies.
//   - Goal Planning: required lump sums, required periodic contributions,
//     bounded time-to-goal searches, and scenario projections.
//   - Currency Risk: per-asset risk profiles aggregating currency exposures,
//     portfolio volatility with diversification, parametric Value-at-Risk,
//     hedging cost and effectiveness modeling, stress tests, and automatic
//     hedging recommendations.
//
// Both engines are pure computations over decimal values: they perform no
// I/O and own no storage. Monetary amounts are kept in exact decimal
// arithmetic; only transcendental operations (fractional exponents, exp)
// route through float64 and are converted back to decimal immediately, so
// results on those paths carry roughly 1e-9 relative precision.
//
// This package serves as the foundational logic for the `fcs` command-line
// tool and for any workflow that needs these calculations.
package fincore
