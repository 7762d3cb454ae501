package middleware

import (
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitConn struct {
	conn *amqp.Connection
}

var (
	instance *RabbitConn
	dialErr  error
	once     sync.Once
)

// GetConnection dials url the first time it is called and shares the
// connection afterwards.
func GetConnection(url string) (*RabbitConn, error) {
	once.Do(func() {
		c, err := amqp.Dial(url)
		if err != nil {
			dialErr = err
			return
		}
		instance = &RabbitConn{conn: c}
	})
	if dialErr != nil {
		return nil, &MessageMiddlewareError{Code: MessageMiddlewareDisconnectedError, Msg: "Could not connect to RabbitMQ: " + dialErr.Error()}
	}
	return instance, nil
}

func (r *RabbitConn) Channel() (*amqp.Channel, error) {
	if r.conn.IsClosed() {
		return nil, &MessageMiddlewareError{Code: MessageMiddlewareDisconnectedError, Msg: "Connection is closed"}
	}
	return r.conn.Channel()
}

func (r *RabbitConn) Close() error {
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

func openChannel(url string) (*amqp.Channel, error) {
	conn, err := GetConnection(url)
	if err != nil {
		return nil, err
	}
	return conn.Channel()
}

func declareExchange(ch *amqp.Channel, name string) error {
	return ch.ExchangeDeclare(
		name,
		"fanout", // type
		false,    // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
}
