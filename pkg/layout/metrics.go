package layout

// Metrics is the single named configuration set for every pixel constant the
// placement strategies use. Strategies never hard-code these values inline,
// which keeps the numbers independently testable and tunable.
type Metrics struct {
	// Shared spacing.
	Margin   int // outer canvas margin
	Spacing  int // inter-component spacing
	GridUnit int // base alignment grid

	// Mobile app strategy.
	StatusBarHeight int
	MobileNavHeight int
	BottomNavHeight int // also the content bottom reserve

	// Dashboard strategy.
	DashboardHeaderHeight int
	SidebarWidth          int

	// Landing page strategy.
	LandingHeaderHeight int
	HeroHeight          int
	SectionHeight       int
	LandingFooterHeight int

	// Form strategy.
	FormColumnMax    int
	FormHeaderHeight int
	FormHeaderGap    int
	FieldHeight      int
	FieldGap         int

	// Ecommerce strategy.
	StoreHeaderHeight int
	CategoryNavHeight int
	ProductRows       int
	WideGridWidth     int // above this, 4 product columns
	MediumGridWidth   int // above this, 3 product columns; else 2
	CardInfoHeight    int // card height = card width + this

	// Blog strategy.
	BlogHeaderHeight  int
	BlogSidebarWidth  int
	BlogFooterReserve int

	// Generic (web-desktop / web-mobile / unknown) strategy.
	HeaderHeight  int
	NavHeight     int
	FooterHeight  int
	FooterReserve int // space withheld from content above the footer
}

// DefaultMetrics returns the canonical metric set.
func DefaultMetrics() Metrics {
	return Metrics{
		Margin:   20,
		Spacing:  16,
		GridUnit: 8,

		StatusBarHeight: 44,
		MobileNavHeight: 56,
		BottomNavHeight: 80,

		DashboardHeaderHeight: 60,
		SidebarWidth:          250,

		LandingHeaderHeight: 80,
		HeroHeight:          400,
		SectionHeight:       300,
		LandingFooterHeight: 120,

		FormColumnMax:    400,
		FormHeaderHeight: 60,
		FormHeaderGap:    20,
		FieldHeight:      48,
		FieldGap:         16,

		StoreHeaderHeight: 80,
		CategoryNavHeight: 50,
		ProductRows:       3,
		WideGridWidth:     1000,
		MediumGridWidth:   600,
		CardInfoHeight:    100,

		BlogHeaderHeight:  80,
		BlogSidebarWidth:  300,
		BlogFooterReserve: 100,

		HeaderHeight:  80,
		NavHeight:     50,
		FooterHeight:  100,
		FooterReserve: 120,
	}
}
