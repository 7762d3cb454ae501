package middleware

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

// Producer publishes to a fanout exchange.
type Producer struct {
	name    string
	channel *amqp.Channel
}

func NewProducer(name string, connectionAddr string) (*Producer, error) {
	ch, err := openChannel(connectionAddr)
	if err != nil {
		return nil, err
	}

	if err := declareExchange(ch, name); err != nil {
		_ = ch.Close()
		return nil, err
	}

	return &Producer{name: name, channel: ch}, nil
}

func (p *Producer) StartConsuming(onMessageCallback OnMessageCallback) (error *MessageMiddlewareError) {
	return &MessageMiddlewareError{Code: MessageMiddlewareProducerCannotConsumeError, Msg: "Producer cannot consume messages"}
}

func (p *Producer) StopConsuming() (error *MessageMiddlewareError) {
	return &MessageMiddlewareError{Code: MessageMiddlewareProducerCannotConsumeError, Msg: "Producer cannot consume messages"}
}

func (p *Producer) Send(message []byte) (error *MessageMiddlewareError) {
	err := p.channel.Publish(
		p.name,
		"",
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        message,
		})

	if err != nil {
		return &MessageMiddlewareError{Code: MessageMiddlewareDisconnectedError, Msg: "Failed to send message: " + err.Error()}
	}

	return nil
}

func (p *Producer) Close() (error *MessageMiddlewareError) {
	if err := p.channel.Close(); err != nil {
		return &MessageMiddlewareError{Code: MessageMiddlewareCloseError, Msg: "Failed to close channel: " + err.Error()}
	}
	return nil
}

func (p *Producer) Delete() (error *MessageMiddlewareError) {
	if err := p.channel.ExchangeDelete(p.name, false, false); err != nil {
		return &MessageMiddlewareError{Code: MessageMiddlewareDeleteError, Msg: "Failed to delete exchange: " + err.Error()}
	}
	return nil
}
