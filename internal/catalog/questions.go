package catalog

import (
	"math/rand"

	"cryptopet/internal/models"
)

// question bank for the rapid-fire quiz minigame
var quizQuestions = []models.QuizQuestion{
	{
		ID:           "b1",
		Question:     `What does "HODL" mean in crypto?`,
		Options:      []string{"Hold On for Dear Life", "High Order Digital Ledger", "Hash Output Data Link", "Honest Open Decentralized Ledger"},
		CorrectIndex: 0,
		Category:     "basics",
		Difficulty:   "easy",
	},
	{
		ID:           "b2",
		Question:     "What is the maximum supply of Bitcoin?",
		Options:      []string{"21 million", "100 million", "Unlimited", "18 million"},
		CorrectIndex: 0,
		Category:     "basics",
		Difficulty:   "easy",
	},
	{
		ID:           "b3",
		Question:     "Who created Bitcoin?",
		Options:      []string{"Satoshi Nakamoto", "Vitalik Buterin", "Charlie Lee", "Elon Musk"},
		CorrectIndex: 0,
		Category:     "basics",
		Difficulty:   "easy",
	},
	{
		ID:           "b4",
		Question:     "What year was Bitcoin launched?",
		Options:      []string{"2009", "2008", "2010", "2011"},
		CorrectIndex: 0,
		Category:     "basics",
		Difficulty:   "easy",
	},
	{
		ID:           "b5",
		Question:     `What does "ATH" stand for?`,
		Options:      []string{"All Time High", "Average Trading Hour", "Automated Token Handler", "Asset Transfer Hash"},
		CorrectIndex: 0,
		Category:     "basics",
		Difficulty:   "easy",
	},
	{
		ID:           "b6",
		Question:     `What is a "whale" in crypto?`,
		Options:      []string{"Someone with large holdings", "A type of token", "A trading algorithm", "A blockchain network"},
		CorrectIndex: 0,
		Category:     "basics",
		Difficulty:   "easy",
	},
	{
		ID:           "b7",
		Question:     "What does FOMO stand for?",
		Options:      []string{"Fear Of Missing Out", "First On Market Offer", "Forward Operating Market Order", "Full On Money Opportunity"},
		CorrectIndex: 0,
		Category:     "basics",
		Difficulty:   "easy",
	},
	{
		ID:           "b8",
		Question:     `What is a "bear market"?`,
		Options:      []string{"Declining prices", "Rising prices", "Stable prices", "Volatile prices"},
		CorrectIndex: 0,
		Category:     "basics",
		Difficulty:   "easy",
	},
	{
		ID:           "w1",
		Question:     "What is a seed phrase?",
		Options:      []string{"Backup words for wallet recovery", "Password for exchanges", "A type of token", "Mining software"},
		CorrectIndex: 0,
		Category:     "wallets",
		Difficulty:   "easy",
	},
	{
		ID:           "w2",
		Question:     `What is a "hot wallet"?`,
		Options:      []string{"Connected to internet", "Stored offline", "A hardware device", "A paper wallet"},
		CorrectIndex: 0,
		Category:     "wallets",
		Difficulty:   "easy",
	},
	{
		ID:           "w3",
		Question:     "What is a private key used for?",
		Options:      []string{"Signing transactions", "Receiving crypto", "Mining blocks", "Creating tokens"},
		CorrectIndex: 0,
		Category:     "wallets",
		Difficulty:   "easy",
	},
	{
		ID:           "w4",
		Question:     "How many words are typically in a seed phrase?",
		Options:      []string{"12 or 24", "6 or 8", "32 or 64", "100"},
		CorrectIndex: 0,
		Category:     "wallets",
		Difficulty:   "medium",
	},
	{
		ID:           "w5",
		Question:     `What is a "cold wallet"?`,
		Options:      []string{"Offline storage", "Online wallet", "Mobile app", "Browser extension"},
		CorrectIndex: 0,
		Category:     "wallets",
		Difficulty:   "easy",
	},
	{
		ID:           "w6",
		Question:     "Which is the safest way to store large amounts?",
		Options:      []string{"Hardware wallet", "Exchange", "Mobile wallet", "Browser extension"},
		CorrectIndex: 0,
		Category:     "wallets",
		Difficulty:   "medium",
	},
	{
		ID:           "w7",
		Question:     "What is Freighter wallet used for?",
		Options:      []string{"Stellar blockchain", "Bitcoin", "Ethereum", "Solana"},
		CorrectIndex: 0,
		Category:     "wallets",
		Difficulty:   "medium",
	},
	{
		ID:           "w8",
		Question:     "Should you share your private key?",
		Options:      []string{"Never", "Only with support", "With trusted friends", "On social media"},
		CorrectIndex: 0,
		Category:     "wallets",
		Difficulty:   "easy",
	},
	{
		ID:           "d1",
		Question:     "What does DEX stand for?",
		Options:      []string{"Decentralized Exchange", "Digital Exchange", "Direct Exchange", "Distributed Exchange"},
		CorrectIndex: 0,
		Category:     "defi",
		Difficulty:   "easy",
	},
	{
		ID:           "d2",
		Question:     "What is a liquidity pool?",
		Options:      []string{"Tokens locked for trading", "A type of wallet", "Mining equipment", "A blockchain network"},
		CorrectIndex: 0,
		Category:     "defi",
		Difficulty:   "medium",
	},
	{
		ID:           "d3",
		Question:     `What is "yield farming"?`,
		Options:      []string{"Earning rewards by providing liquidity", "Mining cryptocurrency", "Day trading", "Staking tokens"},
		CorrectIndex: 0,
		Category:     "defi",
		Difficulty:   "medium",
	},
	{
		ID:           "d4",
		Question:     "What is an AMM?",
		Options:      []string{"Automated Market Maker", "Advanced Mining Machine", "Asset Management Module", "Automatic Money Mover"},
		CorrectIndex: 0,
		Category:     "defi",
		Difficulty:   "medium",
	},
	{
		ID:           "d5",
		Question:     `What is "slippage" in trading?`,
		Options:      []string{"Price difference during trade", "Trading fee", "Network delay", "Wallet error"},
		CorrectIndex: 0,
		Category:     "defi",
		Difficulty:   "medium",
	},
	{
		ID:           "d6",
		Question:     "What is TVL in DeFi?",
		Options:      []string{"Total Value Locked", "Token Verification Layer", "Trading Volume Limit", "Transfer Validation Log"},
		CorrectIndex: 0,
		Category:     "defi",
		Difficulty:   "hard",
	},
	{
		ID:           "d7",
		Question:     "What is impermanent loss?",
		Options:      []string{"Loss from price changes in LP", "Transaction fees", "Network congestion cost", "Wallet hack loss"},
		CorrectIndex: 0,
		Category:     "defi",
		Difficulty:   "hard",
	},
	{
		ID:           "d8",
		Question:     "What is Soroswap?",
		Options:      []string{"DEX on Stellar", "Bitcoin wallet", "Ethereum bridge", "NFT marketplace"},
		CorrectIndex: 0,
		Category:     "defi",
		Difficulty:   "medium",
	},
	{
		ID:           "s1",
		Question:     "What is 2FA?",
		Options:      []string{"Two-Factor Authentication", "Two-File Archive", "Transfer Fee Amount", "Token Format Address"},
		CorrectIndex: 0,
		Category:     "security",
		Difficulty:   "easy",
	},
	{
		ID:           "s2",
		Question:     "What is a phishing attack?",
		Options:      []string{"Fake site stealing info", "Mining attack", "Network spam", "Token duplication"},
		CorrectIndex: 0,
		Category:     "security",
		Difficulty:   "easy",
	},
	{
		ID:           "s3",
		Question:     "What should you do before connecting wallet to a site?",
		Options:      []string{"Verify the URL", "Share seed phrase", "Disable 2FA", "Clear cache"},
		CorrectIndex: 0,
		Category:     "security",
		Difficulty:   "easy",
	},
	{
		ID:           "s4",
		Question:     "What is a rug pull?",
		Options:      []string{"Developers abandoning project", "Price increase", "Network upgrade", "Token airdrop"},
		CorrectIndex: 0,
		Category:     "security",
		Difficulty:   "medium",
	},
	{
		ID:           "s5",
		Question:     "Where should you store your seed phrase?",
		Options:      []string{"Written on paper offline", "In email draft", "Screenshot on phone", "Cloud storage"},
		CorrectIndex: 0,
		Category:     "security",
		Difficulty:   "easy",
	},
	{
		ID:           "s6",
		Question:     "What is a honeypot scam?",
		Options:      []string{"Token you can buy but not sell", "Free crypto giveaway", "Mining pool", "Staking reward"},
		CorrectIndex: 0,
		Category:     "security",
		Difficulty:   "hard",
	},
	{
		ID:           "s7",
		Question:     "How can you verify a token contract?",
		Options:      []string{"Check on block explorer", "Ask on social media", "Trust the website", "Google the name"},
		CorrectIndex: 0,
		Category:     "security",
		Difficulty:   "medium",
	},
	{
		ID:           "s8",
		Question:     "What is social engineering in crypto?",
		Options:      []string{"Manipulating people for info", "Building DApps", "Creating tokens", "Network development"},
		CorrectIndex: 0,
		Category:     "security",
		Difficulty:   "medium",
	},
	{
		ID:           "t1",
		Question:     "What is a limit order?",
		Options:      []string{"Buy/sell at specific price", "Buy at market price", "Automatic trading", "Margin trade"},
		CorrectIndex: 0,
		Category:     "trading",
		Difficulty:   "medium",
	},
	{
		ID:           "t2",
		Question:     "What is DCA?",
		Options:      []string{"Dollar Cost Averaging", "Digital Currency Asset", "Decentralized Crypto App", "Direct Chain Access"},
		CorrectIndex: 0,
		Category:     "trading",
		Difficulty:   "medium",
	},
	{
		ID:           "t3",
		Question:     "What is a market order?",
		Options:      []string{"Buy/sell at current price", "Scheduled purchase", "Limit trade", "Stop loss"},
		CorrectIndex: 0,
		Category:     "trading",
		Difficulty:   "easy",
	},
	{
		ID:           "t4",
		Question:     `What does "long" mean in trading?`,
		Options:      []string{"Betting price will rise", "Betting price will fall", "Holding forever", "Quick trade"},
		CorrectIndex: 0,
		Category:     "trading",
		Difficulty:   "medium",
	},
	{
		ID:           "t5",
		Question:     "What is a stop-loss order?",
		Options:      []string{"Auto-sell to limit losses", "Buy order", "Profit target", "Mining command"},
		CorrectIndex: 0,
		Category:     "trading",
		Difficulty:   "medium",
	},
	{
		ID:           "t6",
		Question:     "What is leverage trading?",
		Options:      []string{"Trading with borrowed funds", "Long-term investing", "Staking tokens", "Providing liquidity"},
		CorrectIndex: 0,
		Category:     "trading",
		Difficulty:   "hard",
	},
	{
		ID:           "t7",
		Question:     "What is arbitrage?",
		Options:      []string{"Profiting from price differences", "Day trading", "Swing trading", "Position trading"},
		CorrectIndex: 0,
		Category:     "trading",
		Difficulty:   "hard",
	},
	{
		ID:           "t8",
		Question:     "What is a trading pair?",
		Options:      []string{"Two assets traded together", "Two traders", "Double transaction", "Backup wallet"},
		CorrectIndex: 0,
		Category:     "trading",
		Difficulty:   "easy",
	},
	{
		ID:           "bc1",
		Question:     "What is a blockchain?",
		Options:      []string{"Distributed ledger", "Cryptocurrency", "Wallet type", "Trading platform"},
		CorrectIndex: 0,
		Category:     "blockchain",
		Difficulty:   "easy",
	},
	{
		ID:           "bc2",
		Question:     "What is a block in blockchain?",
		Options:      []string{"Group of transactions", "Single transaction", "Wallet address", "Private key"},
		CorrectIndex: 0,
		Category:     "blockchain",
		Difficulty:   "easy",
	},
	{
		ID:           "bc3",
		Question:     "What is gas in Ethereum?",
		Options:      []string{"Transaction fee unit", "Token type", "Wallet feature", "Mining reward"},
		CorrectIndex: 0,
		Category:     "blockchain",
		Difficulty:   "medium",
	},
	{
		ID:           "bc4",
		Question:     "What is a smart contract?",
		Options:      []string{"Self-executing code on chain", "Legal agreement", "Wallet backup", "Trading strategy"},
		CorrectIndex: 0,
		Category:     "blockchain",
		Difficulty:   "medium",
	},
	{
		ID:           "bc5",
		Question:     "What is Stellar known for?",
		Options:      []string{"Fast, low-cost transfers", "NFT marketplace", "Gaming", "Social media"},
		CorrectIndex: 0,
		Category:     "blockchain",
		Difficulty:   "medium",
	},
	{
		ID:           "bc6",
		Question:     "What is a hash function?",
		Options:      []string{"One-way encryption", "Decryption tool", "Wallet type", "Token standard"},
		CorrectIndex: 0,
		Category:     "blockchain",
		Difficulty:   "hard",
	},
	{
		ID:           "bc7",
		Question:     "What is consensus mechanism?",
		Options:      []string{"How network agrees on state", "Trading algorithm", "Wallet security", "Token distribution"},
		CorrectIndex: 0,
		Category:     "blockchain",
		Difficulty:   "hard",
	},
	{
		ID:           "bc8",
		Question:     "What is XLM?",
		Options:      []string{"Stellar native token", "Exchange name", "Wallet brand", "Trading tool"},
		CorrectIndex: 0,
		Category:     "blockchain",
		Difficulty:   "easy",
	},
	{
		ID:           "bc9",
		Question:     "What is a validator?",
		Options:      []string{"Node that verifies transactions", "Wallet type", "Token holder", "Exchange"},
		CorrectIndex: 0,
		Category:     "blockchain",
		Difficulty:   "medium",
	},
	{
		ID:           "bc10",
		Question:     "What makes Stellar eco-friendly?",
		Options:      []string{"No mining required", "Uses solar power", "Plants trees", "Carbon credits"},
		CorrectIndex: 0,
		Category:     "blockchain",
		Difficulty:   "medium",
	},
}

// QuizQuestions returns the full minigame question bank.
func QuizQuestions() []models.QuizQuestion {
	return quizQuestions
}

// RandomQuestions picks count questions at random, optionally filtered by
// difficulty ("easy", "medium", "hard"; empty means any). Fewer than count
// are returned when the filtered pool is too small.
func RandomQuestions(count int, difficulty string) []models.QuizQuestion {
	pool := make([]models.QuizQuestion, 0, len(quizQuestions))
	for _, q := range quizQuestions {
		if difficulty == "" || q.Difficulty == difficulty {
			pool = append(pool, q)
		}
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count]
}
