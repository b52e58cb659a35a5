// Package junction provides a simulated four-way traffic intersection
// signal controller: per-direction FIFO lanes receiving vehicles, adaptive
// green-time computation, priority-scored direction selection with
// emergency-vehicle preemption, and pedestrian crossing integration.
//
// The Controller is the single owner of all intersection state and drives
// one decision cycle at a time. Time is logical: every duration is a Tick on
// the controller's Clock, so runs are deterministic and tests never wait on
// the wall clock. External traffic arrives through a Generator, and anything
// that wants to display or record the simulation registers an Observer;
// the core itself never prints.
//
// A minimal run:
//
//	ctrl, err := junction.NewController(junction.NewRandomGenerator(42))
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctrl.AddObserver(observers.NewDefaultLoggingObserver())
//	if err := ctrl.Run(20); err != nil {
//		log.Fatal(err)
//	}
package junction
