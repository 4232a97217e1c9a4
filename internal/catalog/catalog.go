// Package catalog holds the static learning content: modules with their
// lessons, quizzes and practice tasks, the badge definitions, the item
// shop and the minigame configurations. The catalog is read-only at
// runtime so lookups never need locking.
package catalog

import "cryptopet/internal/models"

var modules = []models.Module{
	{
		ID:            "wallet-basics",
		Name:          "Your First Wallet",
		Description:   "Learn what a crypto wallet is and how to keep it safe",
		Icon:          "wallet",
		RequiredLevel: 1,
		XPReward:      150,
		BadgeID:       "badge-wallet-master",
		Order:         1,
		Lessons: []models.Lesson{
			{
				ID:          "wb-1",
				ModuleID:    "wallet-basics",
				Title:       "What is a Crypto Wallet?",
				Description: "Understanding the basics of digital wallets",
				Type:        models.LessonTypeText,
				Content:     "A crypto wallet is like a digital safe for your cryptocurrencies...",
				Duration:    5,
				Order:       1,
			},
			{
				ID:          "wb-2",
				ModuleID:    "wallet-basics",
				Title:       "Seed Phrases Explained",
				Description: "Your wallet's master key",
				Type:        models.LessonTypeText,
				Content:     "A seed phrase is a series of 12-24 words that serves as your wallet's backup...",
				Duration:    7,
				Order:       2,
			},
			{
				ID:          "wb-3",
				ModuleID:    "wallet-basics",
				Title:       "Security Best Practices",
				Description: "Keep your crypto safe",
				Type:        models.LessonTypeText,
				Content:     "Never share your seed phrase with anyone, not even support staff...",
				Duration:    6,
				Order:       3,
			},
		},
		Quiz: models.Quiz{
			ID:       "wb-quiz",
			ModuleID: "wallet-basics",
			Questions: []models.QuizQuestion{
				{
					ID:       "wb-q1",
					Question: "What is a seed phrase used for?",
					Options: []string{
						"To recover your wallet",
						"To send transactions faster",
						"To earn more crypto",
						"To change your wallet address",
					},
					CorrectIndex: 0,
					Explanation:  "A seed phrase is your wallet's backup that allows you to recover access if you lose your device.",
				},
				{
					ID:       "wb-q2",
					Question: "Who should you share your seed phrase with?",
					Options: []string{
						"Customer support",
						"Close friends",
						"No one, ever",
						"Your bank",
					},
					CorrectIndex: 2,
					Explanation:  "You should NEVER share your seed phrase with anyone. No legitimate service will ever ask for it.",
				},
				{
					ID:       "wb-q3",
					Question: "Where is the safest place to store your seed phrase?",
					Options: []string{
						"In a screenshot on your phone",
						"In a notes app",
						"Written on paper, stored offline",
						"In an email to yourself",
					},
					CorrectIndex: 2,
					Explanation:  "The safest storage is offline, on paper or metal, in a secure location.",
				},
			},
		},
		PracticeTask: nil,
	},
	{
		ID:            "first-transaction",
		Name:          "Send & Receive",
		Description:   "Make your first crypto transaction on testnet",
		Icon:          "swap-horizontal",
		RequiredLevel: 1,
		XPReward:      200,
		BadgeID:       "badge-first-tx",
		Order:         2,
		Lessons: []models.Lesson{
			{
				ID:          "ft-1",
				ModuleID:    "first-transaction",
				Title:       "How Transactions Work",
				Description: "Understanding blockchain transfers",
				Type:        models.LessonTypeText,
				Content:     "When you send crypto, you're creating a message that gets recorded on the blockchain...",
				Duration:    8,
				Order:       1,
			},
			{
				ID:          "ft-2",
				ModuleID:    "first-transaction",
				Title:       "Addresses & Fees",
				Description: "The basics of sending and receiving",
				Type:        models.LessonTypeText,
				Content:     "Every wallet has a unique address, like an email address for money...",
				Duration:    6,
				Order:       2,
			},
		},
		Quiz: models.Quiz{
			ID:       "ft-quiz",
			ModuleID: "first-transaction",
			Questions: []models.QuizQuestion{
				{
					ID:       "ft-q1",
					Question: "What do you need to send crypto to someone?",
					Options: []string{
						"Their phone number",
						"Their wallet address",
						"Their email",
						"Their name",
					},
					CorrectIndex: 1,
					Explanation:  "You need the recipient's wallet address to send them crypto.",
				},
				{
					ID:       "ft-q2",
					Question: "What are transaction fees used for?",
					Options: []string{
						"To pay the company that made the blockchain",
						"To pay validators who process transactions",
						"To pay the government",
						"Fees don't exist in crypto",
					},
					CorrectIndex: 1,
					Explanation:  "Transaction fees compensate the validators or miners who process and secure transactions.",
				},
			},
		},
		PracticeTask: &models.PracticeTask{
			ID:          "ft-practice",
			ModuleID:    "first-transaction",
			Title:       "Send Your First Transaction",
			Description: "Practice sending testnet tokens",
			Type:        models.PracticeTransaction,
			Instructions: []string{
				"Connect your testnet wallet",
				"Request testnet tokens from the faucet",
				"Send 1 test token to the practice address",
				"Wait for confirmation",
			},
			ValidationCriteria: "tx_confirmed",
		},
	},
	{
		ID:            "defi-intro",
		Name:          "What is a Swap?",
		Description:   "Learn about decentralized exchanges and make your first swap",
		Icon:          "repeat",
		RequiredLevel: 2,
		XPReward:      250,
		BadgeID:       "badge-defi-beginner",
		Order:         3,
		Lessons: []models.Lesson{
			{
				ID:          "di-1",
				ModuleID:    "defi-intro",
				Title:       "DEX vs CEX",
				Description: "Decentralized vs Centralized exchanges",
				Type:        models.LessonTypeText,
				Content:     "A DEX is a decentralized exchange where you trade directly from your wallet...",
				Duration:    10,
				Order:       1,
			},
			{
				ID:          "di-2",
				ModuleID:    "defi-intro",
				Title:       "How Swaps Work",
				Description: "Understanding liquidity pools",
				Type:        models.LessonTypeText,
				Content:     "When you swap tokens on a DEX, you're trading with a liquidity pool...",
				Duration:    12,
				Order:       2,
			},
			{
				ID:          "di-3",
				ModuleID:    "defi-intro",
				Title:       "Slippage & Price Impact",
				Description: "Important concepts for trading",
				Type:        models.LessonTypeText,
				Content:     "Slippage is the difference between expected and actual price...",
				Duration:    8,
				Order:       3,
			},
		},
		Quiz: models.Quiz{
			ID:       "di-quiz",
			ModuleID: "defi-intro",
			Questions: []models.QuizQuestion{
				{
					ID:       "di-q1",
					Question: "What is a DEX?",
					Options: []string{
						"A type of cryptocurrency",
						"A decentralized exchange",
						"A digital wallet",
						"A blockchain network",
					},
					CorrectIndex: 1,
					Explanation:  "A DEX is a Decentralized Exchange where you can trade crypto without an intermediary.",
				},
				{
					ID:       "di-q2",
					Question: "What is slippage?",
					Options: []string{
						"A transaction error",
						"The difference between expected and actual price",
						"A type of fee",
						"A security feature",
					},
					CorrectIndex: 1,
					Explanation:  "Slippage occurs when the price changes between when you submit a trade and when it executes.",
				},
			},
		},
		PracticeTask: &models.PracticeTask{
			ID:          "di-practice",
			ModuleID:    "defi-intro",
			Title:       "Make Your First Swap",
			Description: "Swap testnet tokens on Soroswap",
			Type:        models.PracticeSwap,
			Instructions: []string{
				"Connect to Soroswap testnet",
				"Select tokens to swap",
				"Review the quote and fees",
				"Execute the swap",
				"View transaction on explorer",
			},
			ValidationCriteria: "swap_confirmed",
		},
	},
}

var badges = []models.Badge{
	{
		ID:          "badge-wallet-master",
		Name:        "Wallet Master",
		Description: "Completed the wallet basics module",
		ModuleID:    "wallet-basics",
	},
	{
		ID:          "badge-first-tx",
		Name:        "First Transaction",
		Description: "Sent a first transaction on testnet",
		ModuleID:    "first-transaction",
	},
	{
		ID:          "badge-defi-beginner",
		Name:        "DeFi Beginner",
		Description: "Made a first swap on a decentralized exchange",
		ModuleID:    "defi-intro",
	},
}

var gameConfigs = []models.GameConfig{
	{
		ID:              "crypto-quiz",
		Name:            "Crypto Quiz",
		QuestionCount:   10,
		TimePerQuestion: 15,
		BaseXP:          30,
		MaxPlaysPerDay:  3,
	},
	{
		ID:              "trading-sim",
		Name:            "Trading Simulator",
		QuestionCount:   0,
		TimePerQuestion: 0,
		BaseXP:          20,
		MaxPlaysPerDay:  5,
	},
	{
		ID:              "crypto-2048",
		Name:            "Crypto 2048",
		QuestionCount:   0,
		TimePerQuestion: 0,
		BaseXP:          15,
		MaxPlaysPerDay:  10,
	},
}

var items = []models.Item{
	{
		ID:          "item-snack",
		Name:        "Crypto Snack",
		Description: "A quick bite that restores some hunger",
		Type:        models.ItemConsumable,
		Rarity:      "common",
		EffectStat:  "hunger",
		EffectValue: 20,
	},
	{
		ID:          "item-energy-drink",
		Name:        "Energy Drink",
		Description: "Restores energy in one gulp",
		Type:        models.ItemConsumable,
		Rarity:      "common",
		EffectStat:  "energy",
		EffectValue: 25,
	},
	{
		ID:          "item-medkit",
		Name:        "Med Kit",
		Description: "Patches up an ailing pet",
		Type:        models.ItemConsumable,
		Rarity:      "rare",
		EffectStat:  "health",
		EffectValue: 40,
	},
	{
		ID:          "item-revival-token",
		Name:        "Revival Token",
		Description: "Brings a pet back with full stats",
		Type:        models.ItemRevival,
		Rarity:      "epic",
	},
	{
		ID:          "item-skin-astronaut",
		Name:        "Astronaut Suit",
		Description: "A skin for pets headed to the moon",
		Type:        models.ItemSkin,
		Rarity:      "rare",
	},
	{
		ID:          "item-env-space",
		Name:        "Space Station",
		Description: "An orbital home environment",
		Type:        models.ItemEnvironment,
		Rarity:      "epic",
	},
}

// Modules returns all learning modules in display order.
func Modules() []models.Module {
	return modules
}

// ModuleByID looks up a module; the second return reports whether it exists.
func ModuleByID(id string) (*models.Module, bool) {
	for i := range modules {
		if modules[i].ID == id {
			return &modules[i], true
		}
	}
	return nil, false
}

// Badges returns all badge definitions.
func Badges() []models.Badge {
	return badges
}

// BadgeByID looks up a badge definition.
func BadgeByID(id string) (*models.Badge, bool) {
	for i := range badges {
		if badges[i].ID == id {
			return &badges[i], true
		}
	}
	return nil, false
}

// GameConfigs returns all minigame configurations.
func GameConfigs() []models.GameConfig {
	return gameConfigs
}

// GameConfigByID looks up a minigame configuration.
func GameConfigByID(id string) (*models.GameConfig, bool) {
	for i := range gameConfigs {
		if gameConfigs[i].ID == id {
			return &gameConfigs[i], true
		}
	}
	return nil, false
}

// Items returns the item shop catalog.
func Items() []models.Item {
	return items
}

// ItemByID looks up an item definition.
func ItemByID(id string) (*models.Item, bool) {
	for i := range items {
		if items[i].ID == id {
			return &items[i], true
		}
	}
	return nil, false
}
