package simulation

// Simulation constants
const (
	// DepletedEpsilon is the water level treated as fully depleted.
	DepletedEpsilon = 1e-9

	// readyBisectIterations bounds the search for the ripening instant.
	// 60 halvings of any realistic step land well below a nanosecond.
	readyBisectIterations = 60
)
