package domain

// HealthCheck is the outcome of one doctor preflight check.
type HealthCheck struct {
	Name   string
	OK     bool
	Detail string
}
