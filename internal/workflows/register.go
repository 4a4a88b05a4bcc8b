package workflows

// Registry is the part of a Temporal worker used to register handlers
type Registry interface {
	RegisterWorkflow(w interface{})
	RegisterActivity(a interface{})
}

// Register wires the webhook workflows and their activities onto a worker
func Register(r Registry, executor Executor) {
	w := NewWebhookWorker(executor)
	r.RegisterWorkflow(w.NotifyWebhookClients)
	r.RegisterWorkflow(w.DeliverWebhook)

	r.RegisterActivity(executor.GetActiveWebhookClientsByEventType)
	r.RegisterActivity(executor.GetWebhookClientByID)
	r.RegisterActivity(executor.CreateWebhookDeliveryRecord)
	r.RegisterActivity(executor.DeliverWebhookHTTP)
}
