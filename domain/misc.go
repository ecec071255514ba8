package domain

import "strings"

// Table is a mongo collection name.
type Table string

const (
	TableListings      Table = "listings"
	TableCounters      Table = "counters"
	TableMarketConfig  Table = "market_config"
	TableTrades        Table = "trades"
	TableTransfers     Table = "transfers"
	TableAuctionConfig Table = "auction_config"
	TableAuctionRounds Table = "auction_rounds"
)

// AccountName identifies a party on the external ledger.
type AccountName string

func (a AccountName) IsEmpty() bool {
	return len(a) == 0
}

func (a AccountName) ToLower() AccountName {
	return AccountName(strings.ToLower(string(a)))
}

func (a AccountName) Equals(b AccountName) bool {
	return a == b
}

// BurnAccount receives fee amounts taken from filled trades.
const BurnAccount = AccountName("eosio.null")
