package config

type KafkaConfig struct {
	BrokerList  []string `yaml:"brokers"`
	Consumer    string   `yaml:"consumer-group"`
	ChartsTopic string   `yaml:"charts-topic"`
	ResTopic    string   `yaml:"results-topic"`
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) ConsumerGroup() string {
	return s.Consumer
}

func (s *KafkaConfig) RequestsTopic() string {
	return s.ChartsTopic
}

func (s *KafkaConfig) ResultsTopic() string {
	return s.ResTopic
}
