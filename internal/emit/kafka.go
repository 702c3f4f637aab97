package emit

import (
	"encoding/json"
	"strings"

	"github.com/IBM/sarama"

	apperrors "hist2json/pkg/errors"
	"hist2json/pkg/types"
)

// KafkaEmitter publishes each decoded record as its own message, the
// supplemented Kafka sink (SPEC_FULL.md Domain Stack), grounded on the
// teacher's kafka_sink.go. It uses a synchronous producer rather than the
// teacher's async/batched queue: the streaming driver is single-threaded
// and ordered (§5), so there is no batching layer to coordinate.
type KafkaEmitter struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafka dials brokers and returns an emitter publishing to topic.
func NewKafka(cfg types.KafkaConfig) (*KafkaEmitter, error) {
	conf := sarama.NewConfig()
	conf.Producer.Return.Successes = true
	conf.Producer.RequiredAcks = sarama.WaitForAll

	switch strings.ToLower(cfg.Compression) {
	case "gzip":
		conf.Producer.Compression = sarama.CompressionGZIP
	case "snappy":
		conf.Producer.Compression = sarama.CompressionSnappy
	case "lz4":
		conf.Producer.Compression = sarama.CompressionLZ4
	default:
		conf.Producer.Compression = sarama.CompressionNone
	}

	if cfg.SASL.Enabled {
		conf.Net.SASL.Enable = true
		conf.Net.SASL.User = cfg.SASL.Username
		conf.Net.SASL.Password = cfg.SASL.Password

		switch strings.ToUpper(cfg.SASL.Mechanism) {
		case "SCRAM-SHA-512":
			conf.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA512
			conf.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
				return &xdgSCRAMClient{HashGeneratorFcn: scramSHA512}
			}
		default:
			conf.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
			conf.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
				return &xdgSCRAMClient{HashGeneratorFcn: scramSHA256}
			}
		}
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, conf)
	if err != nil {
		return nil, apperrors.EmitterError("open", "cannot connect to kafka brokers").Wrap(err)
	}

	return &KafkaEmitter{producer: producer, topic: cfg.Topic}, nil
}

// Emit publishes rec to the configured topic.
func (k *KafkaEmitter) Emit(rec *types.Record) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return apperrors.EmitterError("write", "cannot marshal record").Wrap(err)
	}
	msg := &sarama.ProducerMessage{Topic: k.topic, Value: sarama.ByteEncoder(value)}
	if _, _, err := k.producer.SendMessage(msg); err != nil {
		return apperrors.EmitterError("write", "cannot publish record").Wrap(err)
	}
	return nil
}

// Finish closes the underlying producer. The run summary is not published
// to the topic; callers that want it there should publish it separately.
func (k *KafkaEmitter) Finish(summary *types.RunSummary) error {
	if err := k.producer.Close(); err != nil {
		return apperrors.EmitterError("close", "cannot close kafka producer").Wrap(err)
	}
	return nil
}
