// Package whale provides the domain types and the pure aggregation engine
// of a crypto portfolio tracker.
//
// A Portfolio is a flat, insertion-ordered list of buy and sell
// Transactions. The engine derives everything else from that list on
// demand: GroupBySymbol computes per-asset positions and Summarize computes
// the portfolio totals against a table of current prices. Both are pure
// functions, the derived views are never stored.
//
// Transactions are persisted through a TransactionSource, either a local
// JSONL file (anonymous mode) or the remote API carrying a Session token.
// Market data comes from CoinGecko through a daily disk-cached HTTP client.
package whale
