package transport

import (
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ReportServiceName is the health service name of the reporting API.
const ReportServiceName = "blockinsight7000.Reports"

// NewHealthServer returns a health server reporting both the overall and the
// reporting service status as serving.
func NewHealthServer() *health.Server {
	srv := health.NewServer()
	srv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	srv.SetServingStatus(ReportServiceName, healthpb.HealthCheckResponse_SERVING)
	return srv
}
