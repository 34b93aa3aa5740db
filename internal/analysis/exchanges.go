package analysis

// knownExchanges maps recognized DEX router and exchange addresses
// (lowercase) to a display tag. Addresses without a specific protocol
// name fall back to the generic tag.
var knownExchanges = map[string]string{
	"0x7a250d5630b4cf539739df2c5dacb4c659f2488d": "Uniswap V2",
	"0xe592427a0aece92de3edee1f18e0157c05861564": "Uniswap V3",
	"0x68b3465833fb72a70ecdf485e0e4c7bd8665fc45": genericExchangeTag, // Uniswap Universal Router
	"0x3fc91a3afd70395cd496c647d5a6cc9d4b2b7fad": genericExchangeTag, // Uniswap Universal Router 2
	"0x1111111254fb6c44bac0bed2854e76f90643097d": "1inch",
	"0xdef1c0ded9bec7f1a1670819833240f027b25eff": genericExchangeTag, // 0x Protocol
	"0xa0b86a33e6441e8c8c7014b37c88df5c5c4b2a5c": genericExchangeTag, // Binance hot wallet
}

const genericExchangeTag = "DEX/Exchange"
