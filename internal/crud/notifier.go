package crud

import "context"

// Listener реагирует на изменение данных (создание, обновление, удаление)
type Listener interface {
	OnDataChanged(ctx context.Context)
}

// ListenerFunc позволяет использовать функцию как Listener
type ListenerFunc func(ctx context.Context)

func (f ListenerFunc) OnDataChanged(ctx context.Context) {
	f(ctx)
}

// Notifier - реестр подписчиков одного диалога. Отписка не нужна:
// реестр живёт ровно столько, сколько диалог.
type Notifier struct {
	listeners []Listener
}

// Subscribe добавляет подписчика в конец списка
func (n *Notifier) Subscribe(l Listener) {
	n.listeners = append(n.listeners, l)
}

// NotifyAll синхронно вызывает подписчиков в порядке подписки
func (n *Notifier) NotifyAll(ctx context.Context) {
	for _, l := range n.listeners {
		l.OnDataChanged(ctx)
	}
}

// Len возвращает количество подписчиков
func (n *Notifier) Len() int {
	return len(n.listeners)
}
