package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryGetStarted    // init, new
	CategoryManageBricks  // add, remove, list, get, upgrade
	CategoryGenerate      // make
	CategoryShare         // bundle, unbundle, search, publish
	CategoryAccount       // login, logout
	CategoryMaintenance   // cache, update, completion
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryGetStarted:
		return "get started"
	case CategoryManageBricks:
		return "manage bricks"
	case CategoryGenerate:
		return "generate code"
	case CategoryShare:
		return "share bricks"
	case CategoryAccount:
		return "registry account"
	case CategoryMaintenance:
		return "maintain brick"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryGetStarted,
	CategoryManageBricks,
	CategoryGenerate,
	CategoryShare,
	CategoryAccount,
	CategoryMaintenance,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
