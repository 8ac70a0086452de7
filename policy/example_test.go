package policy_test

import (
	"fmt"
	"log"

	"github.com/hasbyte1/pwgen/policy"
)

// Example_validate demonstrates obtaining a canonical policy and its stable
// text encoding.
func Example_validate() {
	pol, err := policy.Validate(policy.Policy{
		Min:   8,
		Max:   12,
		Allow: [policy.NumCharsets]bool{true, true, false, true},
		Force: [policy.NumCharsets]bool{true, false, false, true},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(pol.Encode())
	// Output: min=8;max=12;allow=lower,upper,symbol;force=lower,symbol
}

// Example_clamping demonstrates that out-of-range bounds are clamped into
// [1,128] rather than rejected.
func Example_clamping() {
	pol, err := policy.Validate(policy.Policy{
		Min:   0,
		Max:   200,
		Allow: [policy.NumCharsets]bool{true, false, false, false},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(pol.Min(), pol.Max())
	// Output: 1 128
}
