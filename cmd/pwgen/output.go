package main

import (
	"encoding/json"
	"io"

	"github.com/nbutton23/zxcvbn-go"

	"github.com/hasbyte1/pwgen/policy"
)

// generateResult is the --json output record. algo_version identifies the
// derivation contract (salt prefix, KDF costs, context format), not the
// caller's rotation counter.
type generateResult struct {
	Password    string `json:"password"`
	Length      int    `json:"length"`
	Site        string `json:"site"`
	Username    string `json:"username"`
	Version     uint32 `json:"version"`
	Policy      string `json:"policy"`
	AlgoVersion int    `json:"algo_version"`
	Strength    int    `json:"strength"`
}

func writeJSON(w io.Writer, password, site, username string, version uint32, pol policy.Canonical) error {
	res := generateResult{
		Password:    password,
		Length:      len(password),
		Site:        site,
		Username:    username,
		Version:     version,
		Policy:      pol.Encode(),
		AlgoVersion: 1,
		Strength:    zxcvbn.PasswordStrength(password, nil).Score,
	}
	return json.NewEncoder(w).Encode(&res)
}
