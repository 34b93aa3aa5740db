package etherscan

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/danakotech/osintwalletonline/internal/core/domain"
)

// txEntry is the explorer's wire shape for txlist and txlistinternal.
type txEntry struct {
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	TimeStamp   string `json:"timeStamp"`
	GasUsed     string `json:"gasUsed"`
	GasPrice    string `json:"gasPrice"`
	BlockNumber string `json:"blockNumber"`
	IsError     string `json:"isError"`
}

// tokenTxEntry is the explorer's wire shape for tokentx.
type tokenTxEntry struct {
	ContractAddress string `json:"contractAddress"`
	TokenName       string `json:"tokenName"`
	TokenSymbol     string `json:"tokenSymbol"`
	TokenDecimal    string `json:"tokenDecimal"`
}

// Balance fetches the wallet's ETH balance as a decimal string with 4
// places. Any failure or malformed response returns "0.0000".
func (c *Client) Balance(ctx context.Context, address string) string {
	params := url.Values{}
	params.Set("address", address)
	params.Set("tag", "latest")

	env, err := c.get(ctx, "balance", params)
	if err != nil {
		slog.Warn("balance fetch failed", "address", address, "error", err)
		return "0.0000"
	}
	if env.Status != statusOK {
		slog.Debug("balance not available", "address", address, "message", env.Message)
		return "0.0000"
	}

	var wei string
	if err := json.Unmarshal(env.Result, &wei); err != nil || wei == "" {
		return "0.0000"
	}
	return WeiToEth(wei)
}

// Transactions fetches the wallet's recent history. It pulls normal
// transactions first and supplements with internal ones when fewer than
// 10 were found. The merged set is deduplicated by hash (first
// occurrence wins), sorted by descending timestamp and capped at the
// configured retention limit. A failing source degrades to an empty
// list for that source only.
func (c *Client) Transactions(ctx context.Context, address string) []domain.Transaction {
	txs := c.fetchTxList(ctx, "txlist", address, c.cfg.MaxTransactions, domain.TxOriginNormal)

	if len(txs) < 10 {
		txs = append(txs, c.fetchTxList(ctx, "txlistinternal", address, 25, domain.TxOriginInternal)...)
	}

	seen := make(map[string]struct{}, len(txs))
	unique := txs[:0]
	for _, tx := range txs {
		if _, dup := seen[tx.Hash]; dup {
			continue
		}
		seen[tx.Hash] = struct{}{}
		unique = append(unique, tx)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Timestamp > unique[j].Timestamp
	})

	if len(unique) > c.cfg.MaxTransactions {
		unique = unique[:c.cfg.MaxTransactions]
	}
	return unique
}

func (c *Client) fetchTxList(ctx context.Context, action, address string, pageSize int, origin domain.TxOrigin) []domain.Transaction {
	params := url.Values{}
	params.Set("address", address)
	params.Set("startblock", "0")
	params.Set("endblock", "99999999")
	params.Set("page", "1")
	params.Set("offset", strconv.Itoa(pageSize))
	params.Set("sort", "desc")

	env, err := c.get(ctx, action, params)
	if err != nil {
		slog.Warn("transaction fetch failed", "action", action, "address", address, "error", err)
		return nil
	}
	if env.Status != statusOK {
		slog.Debug("no transactions returned", "action", action, "address", address, "message", env.Message)
		return nil
	}

	var entries []txEntry
	if err := json.Unmarshal(env.Result, &entries); err != nil {
		slog.Warn("transaction list parse failed", "action", action, "error", err)
		return nil
	}

	txs := make([]domain.Transaction, 0, len(entries))
	for _, e := range entries {
		ts, _ := strconv.ParseInt(e.TimeStamp, 10, 64)
		to := e.To
		if to == "" && origin == domain.TxOriginNormal {
			to = domain.ContractCreation
		}
		gasUsed, gasPrice := e.GasUsed, e.GasPrice
		if origin == domain.TxOriginInternal {
			gasUsed, gasPrice = "0", "0"
		}
		txs = append(txs, domain.Transaction{
			Hash:        e.Hash,
			From:        e.From,
			To:          to,
			Value:       weiToEthSixPlaces(e.Value),
			Timestamp:   ts,
			GasUsed:     gasUsed,
			GasPrice:    gasPrice,
			BlockNumber: e.BlockNumber,
			Failed:      e.IsError == "1",
			Origin:      origin,
		})
	}
	return txs
}

// TokenHoldings fetches the wallet's token transfer history, derives
// the set of unique token contracts, and resolves a balance for a
// bounded subset of them concurrently. Only strictly positive balances
// are retained. A failing per-contract lookup degrades that single
// token to zero; it never aborts the batch.
func (c *Client) TokenHoldings(ctx context.Context, address string) []domain.TokenHolding {
	params := url.Values{}
	params.Set("address", address)
	params.Set("startblock", "0")
	params.Set("endblock", "999999999")
	params.Set("page", "1")
	params.Set("offset", "100")
	params.Set("sort", "desc")

	env, err := c.get(ctx, "tokentx", params)
	if err != nil {
		slog.Warn("token transfer fetch failed", "address", address, "error", err)
		return nil
	}
	if env.Status != statusOK {
		slog.Debug("no token transfers returned", "address", address, "message", env.Message)
		return nil
	}

	var entries []tokenTxEntry
	if err := json.Unmarshal(env.Result, &entries); err != nil {
		slog.Warn("token transfer parse failed", "error", err)
		return nil
	}

	// First transfer event referencing a contract supplies its metadata.
	seen := make(map[string]struct{})
	var candidates []domain.TokenHolding
	for _, e := range entries {
		contract := domain.NormalizeAddress(e.ContractAddress)
		if contract == "" {
			continue
		}
		if _, dup := seen[contract]; dup {
			continue
		}
		seen[contract] = struct{}{}

		decimals, err := strconv.Atoi(e.TokenDecimal)
		if err != nil {
			decimals = 18
		}
		name := e.TokenName
		if name == "" {
			name = "Unknown Token"
		}
		symbol := e.TokenSymbol
		if symbol == "" {
			symbol = "???"
		}
		candidates = append(candidates, domain.TokenHolding{
			Name:            name,
			Symbol:          symbol,
			ContractAddress: contract,
			Decimals:        decimals,
			Balance:         "0",
			RawBalance:      "0",
			Value:           "0.00",
		})
		if len(candidates) == c.cfg.MaxTokens {
			break
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	// Unordered bounded fan-out. Each item absorbs its own failure so
	// one bad lookup cannot cancel its siblings.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.FanOutLimit)
	for i := range candidates {
		i := i
		g.Go(func() error {
			token := &candidates[i]
			raw, ok := c.tokenBalance(gctx, token.ContractAddress, address)
			if !ok {
				return nil
			}
			token.RawBalance = raw
			token.Balance = RawToDecimal(raw, token.Decimals)
			return nil
		})
	}
	_ = g.Wait()

	holdings := make([]domain.TokenHolding, 0, len(candidates))
	for _, token := range candidates {
		if positiveBalance(token.Balance) {
			holdings = append(holdings, token)
		}
	}
	return holdings
}

func (c *Client) tokenBalance(ctx context.Context, contract, address string) (string, bool) {
	params := url.Values{}
	params.Set("contractaddress", contract)
	params.Set("address", address)
	params.Set("tag", "latest")

	env, err := c.get(ctx, "tokenbalance", params)
	if err != nil {
		slog.Debug("token balance fetch failed", "contract", contract, "error", err)
		return "", false
	}
	if env.Status != statusOK {
		return "", false
	}

	var raw string
	if err := json.Unmarshal(env.Result, &raw); err != nil || raw == "" {
		return "", false
	}
	return raw, true
}

func weiToEthSixPlaces(wei string) string {
	s := RawToDecimal(wei, 18)
	if s == "0" {
		return "0.000000"
	}
	return s
}

func positiveBalance(s string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && f > 0
}
