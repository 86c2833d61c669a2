package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/climemate-chain/climemate/x/mpc/types"
)

func TestGenesisValidate(t *testing.T) {
	spec, _ := types.KindByName(types.KindProveThreshold)
	now := time.Now().UTC()

	def := types.CompDef{Name: spec.Name, Id: spec.Id, Initialized: true, InitializedAt: now}
	comp := types.PendingComputation{
		Offset:    1,
		Kind:      spec.Name,
		CompDefId: spec.Id,
		Requester: testAddr,
		Route:     types.CallbackRoute{CompDefId: spec.Id, Signer: types.DeriveSignerAddress().String()},
		Status:    types.COMPUTATION_STATUS_QUEUED,
		QueuedAt:  now,
	}

	t.Run("default is valid", func(t *testing.T) {
		require.NoError(t, types.DefaultGenesis().Validate())
	})

	t.Run("valid populated state", func(t *testing.T) {
		gs := types.GenesisState{
			Params:       types.DefaultParams(),
			CompDefs:     []types.CompDef{def},
			Computations: []types.PendingComputation{comp},
		}
		require.NoError(t, gs.Validate())
	})

	t.Run("duplicate comp def", func(t *testing.T) {
		gs := types.GenesisState{
			Params:   types.DefaultParams(),
			CompDefs: []types.CompDef{def, def},
		}
		require.Error(t, gs.Validate())
	})

	t.Run("duplicate offset", func(t *testing.T) {
		gs := types.GenesisState{
			Params:       types.DefaultParams(),
			CompDefs:     []types.CompDef{def},
			Computations: []types.PendingComputation{comp, comp},
		}
		require.Error(t, gs.Validate())
	})

	t.Run("computation without its def", func(t *testing.T) {
		gs := types.GenesisState{
			Params:       types.DefaultParams(),
			Computations: []types.PendingComputation{comp},
		}
		require.Error(t, gs.Validate())
	})

	t.Run("invalid params", func(t *testing.T) {
		params := types.DefaultParams()
		params.ExecutorAuthority = "nope"
		gs := types.GenesisState{Params: params}
		require.Error(t, gs.Validate())
	})
}
