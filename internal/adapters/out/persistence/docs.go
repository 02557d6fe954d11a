// Package persistence provides the GORM-based Unit of Work and database setup
// for the order lifecycle. The same repositories run on PostgreSQL and SQLite;
// Open picks the dialector once from Options.Driver.
//
// A status change and its history entry are written through one GormUnitOfWork:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
//	if err != nil {
//	    return err
//	}
//	if err = o.ChangeStatus(actor, order.Shipped, time.Now()); err != nil {
//	    return err
//	}
//	if err = uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if err = uow.HistoryRepository().Append(ctx, o.PullHistory()...); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - GetForUpdate locks the order row on PostgreSQL; SQLite serialises
//     writers with BEGIN IMMEDIATE
package persistence
