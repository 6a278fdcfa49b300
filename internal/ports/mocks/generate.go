//go:generate mockgen -source=../logger.go               -destination=./mock_logger.go               -package=mocks
//go:generate mockgen -source=../message_consumer.go     -destination=./mock_message_consumer.go     -package=mocks
//go:generate mockgen -source=../session_store.go        -destination=./mock_session_store.go        -package=mocks
//go:generate mockgen -source=../product_repository.go   -destination=./mock_product_repository.go   -package=mocks
//go:generate mockgen -source=../order_repository.go     -destination=./mock_order_repository.go     -package=mocks
//go:generate mockgen -source=../order_recorder.go       -destination=./mock_order_recorder.go       -package=mocks
//go:generate mockgen -source=../form_relay.go           -destination=./mock_form_relay.go           -package=mocks
//go:generate mockgen -source=../notifier.go             -destination=./mock_notifier.go             -package=mocks
//go:generate mockgen -source=../image_store.go          -destination=./mock_image_store.go          -package=mocks
//go:generate mockgen -source=../validator.go            -destination=./mock_validator.go            -package=mocks
//go:generate mockgen -source=../catalog_service.go      -destination=./mock_catalog_service.go      -package=mocks
//go:generate mockgen -source=../order_admin_service.go  -destination=./mock_order_admin_service.go  -package=mocks

package mocks
