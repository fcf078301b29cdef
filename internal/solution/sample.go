package solution

import (
	"github.com/cutwise/cutwise/internal/model"
	"github.com/cutwise/cutwise/internal/summary"
)

// mustMaterial parses a compile-time material literal, panicking on failure
// like regexp.MustCompile.
func mustMaterial(s string) model.MaterialDetails {
	m, err := model.ParseMaterial(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Sample returns a small deterministic demo solution: two boards of
// different cores, one rotated part, one material upgrade, and one part that
// did not fit. Board offcuts are left for Load to derive. Written by the
// init command so reports can be generated without a real optimizer run.
func Sample() *Solution {
	mr := mustMaterial("2614 SF_18MR_2614 SF")
	hdhmr := mustMaterial("2614 SF_18HDHMR_2614 SF")

	board1 := &model.Board{
		ID:          "board-1-18mr",
		Material:    mr,
		TotalLength: 2440,
		TotalWidth:  1220,
		Kerf:        3,
		Parts: []model.Part{
			{
				ID: "side-panel-a", RequestedLength: 720, RequestedWidth: 450, Quantity: 1,
				AssignedBoardID: "board-1-18mr", ActualLength: 720, ActualWidth: 450,
				X: 0, Y: 0, Material: mr,
			},
			{
				ID: "side-panel-b", RequestedLength: 720, RequestedWidth: 450, Quantity: 1,
				AssignedBoardID: "board-1-18mr", ActualLength: 720, ActualWidth: 450,
				X: 723, Y: 0, Material: mr,
			},
			{
				ID: "top-panel", RequestedLength: 900, RequestedWidth: 450, Quantity: 1,
				AssignedBoardID: "board-1-18mr", ActualLength: 900, ActualWidth: 450,
				X: 1446, Y: 0, Material: mr,
			},
			{
				ID: "door-a", RequestedLength: 597, RequestedWidth: 396, Quantity: 1,
				Grain:           model.GrainSensitive,
				AssignedBoardID: "board-1-18mr", ActualLength: 597, ActualWidth: 396,
				X: 0, Y: 453, Material: mr,
			},
			{
				ID: "door-b", RequestedLength: 597, RequestedWidth: 396, Quantity: 1,
				Grain:           model.GrainSensitive,
				AssignedBoardID: "board-1-18mr", ActualLength: 597, ActualWidth: 396,
				X: 600, Y: 453, Material: mr,
			},
		},
	}

	upgradedBack := hdhmr
	board2 := &model.Board{
		ID:          "board-2-18hdhmr",
		Material:    hdhmr,
		TotalLength: 2440,
		TotalWidth:  1220,
		Kerf:        3,
		Parts: []model.Part{
			{
				ID: "back-panel", RequestedLength: 1200, RequestedWidth: 350, Quantity: 1,
				AssignedBoardID: "board-2-18hdhmr", ActualLength: 1200, ActualWidth: 350,
				X: 0, Y: 0,
				Material:         mr,
				AssignedMaterial: &upgradedBack,
				Upgraded:         true,
			},
			{
				ID: "drawer-front", RequestedLength: 500, RequestedWidth: 300, Quantity: 1,
				AssignedBoardID: "board-2-18hdhmr", ActualLength: 300, ActualWidth: 500,
				X: 1203, Y: 0, Rotated: true,
				Material: hdhmr,
			},
		},
	}

	return &Solution{
		OrderName: "Demo Kitchen",
		Boards:    []*model.Board{board1, board2},
		UnplacedParts: []model.Part{
			{
				ID: "oversize-worktop", RequestedLength: 2600, RequestedWidth: 700, Quantity: 1,
				Grain: model.GrainSensitive, Material: mr,
			},
		},
		Upgrades: []summary.UpgradeTriple{
			{Original: "2614 SF_18MR_2614 SF", Upgraded: "2614 SF_18HDHMR_2614 SF", Count: 1},
		},
		InitialCost: 9614.50,
		FinalCost:   8206.25,
	}
}
