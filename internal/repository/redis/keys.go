package redis

import "fmt"

const ns = "countd:v1"

func KeyScreeningDetail(screeningID string) string {
	return fmt.Sprintf("%s:screening:%s:detail", ns, screeningID)
}

func KeyScreeningSummary(screeningID string) string {
	return fmt.Sprintf("%s:screening:%s:summary", ns, screeningID)
}

func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}

func KeyIdemScreening(idemKey string) string {
	return fmt.Sprintf("%s:idem:screenings:%s", ns, idemKey)
}

func ChannelScreeningsChanged() string {
	return ns + ":screenings:changed"
}
