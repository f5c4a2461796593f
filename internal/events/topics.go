package events

// LifecycleTopics lists every topic the API publishes to.
func LifecycleTopics() []string {
	return []string{
		CompanyLifecycleTopic,
		InvoiceLifecycleTopic,
		IndustryLifecycleTopic,
	}
}
