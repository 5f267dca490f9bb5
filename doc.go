// Package holdings converts transaction-history exports from cryptocurrency
// exchanges, brokerages, and banks into two canonical, strongly-typed
// outputs: aggregated holding positions (net quantity, cost basis, current
// value, tax treatment) and discrete tax events (sales, staking rewards,
// airdrops, mining income, conversions, ordinary income).
//
// The input is loosely-structured delimited text. The pipeline tolerates
// incompatible, undocumented vendor layouts: it recovers a header row buried
// under vendor preamble, classifies ambiguous transaction-type strings, and
// allocates cost basis across partially-sold holdings, all without failing
// on malformed input.
//
// The core functionalities include:
//   - Tokenizer: quote-aware splitting of raw text into a header row and
//     data rows, with header-row recovery.
//   - Format Detection: classifying normalized headers into one of the
//     known source formats, or "custom".
//   - Normalizers: one per known source, mapping vendor columns into the
//     canonical RawTransaction record; a column-mapping-driven fallback
//     handles everything else.
//   - Aggregation: grouping transactions by ticker into positions with
//     average-cost basis allocation, and deriving one tax event per
//     taxable transaction.
//
// ImportCSV is the single entry point; it is a pure, synchronous
// transformation from text to an ImportResult and never returns an error:
// structural problems, unparseable rows, and normalizer failures all
// surface as warnings inside a fully-formed result. Concurrent calls with
// different inputs are safe.
//
// This package serves as the foundational logic for the `hld` command-line
// tool.
package holdings
