package arrangements

import (
	"github.com/vovakirdan/panelboard/internal/registry"
)

func init() {
	register(recipe{
		id:    "single",
		title: "Single",
		desc:  "one centred box",
		seed:  seedSingle,
	})
	register(recipe{
		id:    "pair",
		title: "Pair",
		desc:  "two boxes side by side",
		seed:  seedPair,
	})
	register(recipe{
		id:    "cascade",
		title: "Cascade",
		desc:  "three boxes stepping down from the top left",
		seed:  seedCascade,
	})
	register(recipe{
		id:    "grid",
		title: "Grid",
		desc:  "four boxes, one per quadrant",
		seed:  seedGrid,
	})
}

func seedSingle(b registry.Board) error {
	b.AddBox()
	return nil
}

func seedPair(b registry.Board) error {
	c := b.Container()
	shift := c.W / 5

	if _, err := drag(b, b.AddBox(), -shift, 0); err != nil {
		return err
	}
	_, err := drag(b, b.AddBox(), shift, 0)
	return err
}

func seedCascade(b registry.Board) error {
	c := b.Container()
	stepX, stepY := c.W/8, c.H/8

	for i := -1; i <= 1; i++ {
		if _, err := drag(b, b.AddBox(), float64(i)*stepX, float64(i)*stepY); err != nil {
			return err
		}
	}
	return nil
}

func seedGrid(b registry.Board) error {
	c := b.Container()
	qx, qy := c.W/4, c.H/4

	quadrants := [][2]float64{{-qx, -qy}, {qx, -qy}, {-qx, qy}, {qx, qy}}
	for _, q := range quadrants {
		v, err := drag(b, b.AddBox(), q[0], q[1])
		if err != nil {
			return err
		}
		// Grow each box a little towards the next quadrant.
		if err := stretch(b, v, qx/4, qy/4); err != nil {
			return err
		}
	}
	return nil
}
