package types

import "fmt"

// AssetState is the lifecycle state of an original asset as seen by the ledger.
// Assets that were never staked are UNSTAKED implicitly.
type AssetState string

const (
	AssetStateUnstaked AssetState = "UNSTAKED"
	AssetStateStaked   AssetState = "STAKED"
	// AssetStateClaimed is terminal: the asset paid its reward and can't be staked again.
	AssetStateClaimed AssetState = "CLAIMED"
)

func (s AssetState) String() string {
	return string(s)
}

func AssetStateFromString(s string) (AssetState, error) {
	switch s {
	case "UNSTAKED":
		return AssetStateUnstaked, nil
	case "STAKED":
		return AssetStateStaked, nil
	case "CLAIMED":
		return AssetStateClaimed, nil
	default:
		return "", fmt.Errorf("invalid asset state: %s", s)
	}
}
