// Package ttp is a toolkit for evolutionary search on the Travelling Thief
// Problem (TTP): a thief visits every city exactly once, may pick items on the
// way, and pays rent for every unit of travel time while a heavier knapsack
// slows them down.
//
// The building blocks live in subpackages:
//
//	matrix/     — dense distance matrices, Euclidean builder (EUC_2D / CEIL_2D) & validators
//	ttp/        — instance model and the fitness evaluator (time, weight, profit, net)
//	genetic/    — permutation repair, coupled single/two-point crossover,
//	              biased real-vector crossover, seeded RNG & random sampling
//	ttpio/      — parser for the benchmark text format
//	population/ — bounded-concurrency scoring of whole populations & summary statistics
//
// Every operator is a pure function of its inputs and an explicit *rand.Rand,
// so runs are reproducible from a seed. Nothing logs; errors carry sentinel
// values (ttp.ErrInvalidInput, ttp.ErrInvariantViolation, ...) that callers
// match with errors.Is.
//
// A typical generation step:
//
//	prob, _ := ttpio.ParseFile("a280-n279.ttp")
//	ev, _ := prob.Evaluator()
//	pop, _ := genetic.RandomPopulation(genetic.NewRNG(1), 100, ev.Dimension(), 0.05)
//	scored, _ := population.Evaluate(ctx, ev, pop)
//	stats := population.Summarize(scored)
//	child1, child2, _ := genetic.CrossTwoPoint(rng, pop[stats.BestIndex], pop[0])
package ttp
