// Package wealthtracker is a portfolio valuation and financial-projection
// engine. It turns an append-only ledger of buy and sell transactions into
// per-asset and aggregate metrics, reconstructs total wealth at an arbitrary
// past date, and solves compound-interest annuity equations to project a
// savings goal's trajectory against reality.
//
// The core functionalities include:
//   - Position Ledger: reducing the transaction list to a net owned quantity
//     per asset, with decimal arithmetic so that repeated fractional trades
//     leave no floating-point residue.
//   - Cost Basis & PnL: perpetual weighted-average buy price inclusive of
//     fees, realized and unrealized profit-and-loss, and portfolio-wide
//     aggregates.
//   - Category Aggregation: per-category totals and shares.
//   - Temporal Reconstruction: replaying the ledger to value the portfolio
//     "as of" any past date (at present-day prices, by design).
//   - Projection Solver: future value, required monthly payment, and compound
//     annual growth rate for a savings objective.
//   - Chart Series: calendar-aligned sample grids mapped through the
//     reconstructor and the solver to produce comparable time series.
//
// The engine is a library of pure functions over plain data: it never
// mutates its inputs, performs no I/O, and is safe to call concurrently.
// Persistence supplies the data (see DecodeLedger), the caller supplies a
// current market price per asset.
//
// This package is the foundational logic for the `wt` command-line tool.
package wealthtracker
