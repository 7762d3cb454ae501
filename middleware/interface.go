package middleware

import (
	"fmt"
)

type MiddlewareMessage struct {
	Body    []byte
	Headers map[string]interface{}
}

type MessageMiddlewareError struct {
	Code int
	Msg  string
}

func (e *MessageMiddlewareError) Error() string {
	return fmt.Sprintf("middleware error (%d): %s", e.Code, e.Msg)
}

const (
	MessageMiddlewareMessageError int = iota + 1
	MessageMiddlewareDisconnectedError
	MessageMiddlewareCloseError
	MessageMiddlewareDeleteError
	MessageMiddlewareProducerCannotConsumeError
)

// OnMessageCallback handles one delivery and reports through done whether it
// must be acknowledged (nil) or requeued.
type OnMessageCallback func(consumeChannel MiddlewareMessage, done chan *MessageMiddlewareError)

type MessageMiddleware interface {
	/*
	   Starts listening on the queue/exchange and calls onMessageCallback for
	   every delivery. Blocks until StopConsuming is called or the channel is
	   closed. Returns MessageMiddlewareMessageError if consuming cannot start.
	*/
	StartConsuming(onMessageCallback OnMessageCallback) (error *MessageMiddlewareError)

	/*
	   Stops a running StartConsuming. Has no effect if nothing was being
	   consumed.
	*/
	StopConsuming() (error *MessageMiddlewareError)

	/*
	   Publishes a message to the exchange or queue the middleware was
	   created for. Returns MessageMiddlewareDisconnectedError when the
	   connection is lost.
	*/
	Send(message []byte) (error *MessageMiddlewareError)

	/*
	   Disconnects from the queue or exchange.
	*/
	Close() (error *MessageMiddlewareError)

	/*
	   Forces the remote deletion of the queue or exchange.
	*/
	Delete() (error *MessageMiddlewareError)
}
