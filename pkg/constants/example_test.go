package constants_test

import (
	"fmt"

	"github.com/agentstation/pricemap/pkg/constants"
)

// Example shows the pricing defaults applied when no configuration overrides them
func Example() {
	fmt.Printf("undercut by %.0f\n", constants.DefaultUndercutAmount)
	fmt.Printf("fallback margin x%.1f\n", constants.DefaultFallbackMargin)
	fmt.Printf("default validity %d days\n", constants.DefaultValidityDays)
	// Output:
	// undercut by 5
	// fallback margin x1.2
	// default validity 30 days
}
