package cli

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/babylonlabs-io/nft-staker/internal/config"
	"github.com/babylonlabs-io/nft-staker/internal/ledger"
	"github.com/babylonlabs-io/nft-staker/internal/queue"
	"github.com/babylonlabs-io/nft-staker/internal/types"
	"github.com/babylonlabs-io/nft-staker/pkg"
)

type ledgerDump struct {
	Sequence uint64
	Stats    ledger.Stats
	Claimed  []uint64
	Records  map[common.Address][]types.StakeRecord
}

func DumpLedgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump-ledger",
		Short: "Replays the persisted changesets and prints the resulting ledger",
		Args:  cobra.ExactArgs(0),
		RunE:  dumpLedger,
	}

	cmd.Flags().String("staker", "", "Only print records of this staker")

	return cmd
}

func dumpLedger(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return err
	}
	if cfg.Db == nil {
		return fmt.Errorf("dump-ledger needs a db section in the config")
	}

	var stakers []common.Address
	if raw, _ := cmd.Flags().GetString("staker"); raw != "" {
		staker, err := pkg.ParseAddress(raw)
		if err != nil {
			return err
		}
		stakers = []common.Address{staker}
	}

	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	a, err := newApp(ctx, cfg, store, queue.NoopPublisher{})
	if err != nil {
		return err
	}

	writeLedgerDump(cmd.OutOrStdout(), a.service.Ledger(), stakers)
	return nil
}

// writeLedgerDump prints l to w. A nil stakers prints every staker's records.
func writeLedgerDump(w io.Writer, l *ledger.Ledger, stakers []common.Address) {
	if stakers == nil {
		stakers = l.ListStakerAddresses()
	}

	dump := ledgerDump{
		Sequence: l.Sequence(),
		Stats:    l.Stats(),
		Claimed:  l.ClaimedIDs(),
		Records:  make(map[common.Address][]types.StakeRecord, len(stakers)),
	}
	for _, staker := range stakers {
		dump.Records[staker] = l.Records(staker)
	}

	printer := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
	printer.Fdump(w, dump)
}
